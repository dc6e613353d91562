package cmd

import (
	"punchclock/config"
	"punchclock/pipeline"
	"punchclock/storage"
)

func pipelineFromConfig() (*pipeline.Pipeline, *config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}
	return pipeline.New(cfg.ExcludedProjects), cfg, nil
}

func openStore(cfg *config.Config, override string) (*storage.SQLiteStore, error) {
	path := cfg.Storage.Path
	if override != "" {
		path = override
	}
	return storage.OpenSQLite(path)
}

func batchName(cfg *config.Config) string {
	if cfg.Storage.Batch != "" {
		return cfg.Storage.Batch
	}
	return storage.DefaultBatchName
}
