package storage

import (
	"path/filepath"
	"testing"

	"punchclock/timecard"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "punchclock_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SaveAndLoadBatch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	entries := []timecard.NormalizedEntry{
		{Date: "2014-08-18", Project: "P0", Task: "T0", Start: "09:00"},
		{Date: "2014-08-18", Project: "Home", Task: "", Start: "17:00"},
	}

	if err := store.SaveBatch(DefaultBatchName, entries); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	loaded, err := store.LoadBatch(DefaultBatchName)
	if err != nil {
		t.Fatalf("load batch: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].Project != "P0" || loaded[0].Start != "09:00" || loaded[0].Date != "2014-08-18" {
		t.Fatalf("unexpected first entry: %+v", loaded[0])
	}
	if loaded[1].Project != "Home" || loaded[1].Task != "" {
		t.Fatalf("unexpected second entry: %+v", loaded[1])
	}
}

func TestSQLiteStore_SaveBatchReplacesPreviousPayload(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	first := []timecard.NormalizedEntry{{Date: "2014-08-18", Project: "P0", Start: "09:00"}}
	second := []timecard.NormalizedEntry{{Date: "2014-08-19", Project: "P1", Start: "10:00"}}

	if err := store.SaveBatch(DefaultBatchName, first); err != nil {
		t.Fatalf("save first batch: %v", err)
	}
	if err := store.SaveBatch(DefaultBatchName, second); err != nil {
		t.Fatalf("save second batch: %v", err)
	}

	loaded, err := store.LoadBatch(DefaultBatchName)
	if err != nil {
		t.Fatalf("load batch: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Project != "P1" {
		t.Fatalf("expected replacement batch, got %+v", loaded)
	}
}

func TestSQLiteStore_MissingBatchIsEmptyNotError(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	loaded, err := store.LoadBatch("never-saved")
	if err != nil {
		t.Fatalf("load batch: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty batch, got %+v", loaded)
	}
}

func TestSQLiteStore_MalformedPayloadIsEmptyNotError(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if _, err := store.db.Exec(
		`INSERT INTO batches (name, payload) VALUES (?, ?);`,
		DefaultBatchName,
		`{"not": "a batch"`,
	); err != nil {
		t.Fatalf("seed malformed payload: %v", err)
	}

	loaded, err := store.LoadBatch(DefaultBatchName)
	if err != nil {
		t.Fatalf("load batch: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty batch for malformed payload, got %+v", loaded)
	}
}

func TestSQLiteStore_DeleteBatch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.SaveBatch(DefaultBatchName, []timecard.NormalizedEntry{
		{Date: "2014-08-18", Project: "P0", Start: "09:00"},
	}); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	deleted, err := store.DeleteBatch(DefaultBatchName)
	if err != nil {
		t.Fatalf("delete batch: %v", err)
	}
	if !deleted {
		t.Fatalf("expected existing batch to be deleted")
	}

	deleted, err = store.DeleteBatch(DefaultBatchName)
	if err != nil {
		t.Fatalf("delete missing batch: %v", err)
	}
	if deleted {
		t.Fatalf("expected no-op delete for missing batch")
	}
}
