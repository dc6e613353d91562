package pipeline

import (
	"testing"

	"punchclock/timecard"
)

func interval(project, task string, minutes int) timecard.Interval {
	return timecard.Interval{Date: "2014-08-18", Project: project, Task: task, Minutes: minutes}
}

func TestAggregate_SumsByProjectAndTask(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator(nil)
	summaries := aggregator.Aggregate([]timecard.Interval{
		interval("P0", "T0", 75),
		interval("P0", "T1", 60),
		interval("P0", "T0", 60),
	})

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Project != "P0" || summaries[0].Task != "T0" || summaries[0].Minutes != 135 {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].Task != "T1" || summaries[1].Minutes != 60 {
		t.Fatalf("unexpected second summary: %+v", summaries[1])
	}
}

func TestAggregate_ExcludesHomeAndLunchCaseInsensitively(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator(nil)
	summaries := aggregator.Aggregate([]timecard.Interval{
		interval("P0", "T0", 60),
		interval("Lunch", "", 30),
		interval("HOME", "", 15),
		interval("home", "", 15),
	})

	if len(summaries) != 1 {
		t.Fatalf("expected only the work summary, got %+v", summaries)
	}
	if summaries[0].Project != "P0" || summaries[0].Minutes != 60 {
		t.Fatalf("unexpected summary: %+v", summaries[0])
	}
}

func TestAggregate_GroupingIsCaseSensitive(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator(nil)
	summaries := aggregator.Aggregate([]timecard.Interval{
		interval("P0", "T0", 30),
		interval("p0", "T0", 30),
		interval("P0", "t0", 30),
	})

	if len(summaries) != 3 {
		t.Fatalf("expected 3 distinct groups, got %+v", summaries)
	}
}

func TestAggregate_EmissionFollowsFirstAppearance(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator(nil)
	summaries := aggregator.Aggregate([]timecard.Interval{
		interval("B", "T", 10),
		interval("A", "T", 10),
		interval("B", "T", 10),
	})

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Project != "B" || summaries[0].Minutes != 20 {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].Project != "A" {
		t.Fatalf("unexpected second summary: %+v", summaries[1])
	}
}

func TestAggregate_CustomExclusions(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator([]string{"break"})
	summaries := aggregator.Aggregate([]timecard.Interval{
		interval("Break", "", 30),
		interval("Lunch", "eat", 45),
	})

	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %+v", summaries)
	}
	if summaries[0].Project != "Lunch" || summaries[0].Minutes != 45 {
		t.Fatalf("custom exclusions must replace the defaults, got %+v", summaries[0])
	}
}

func TestAggregate_EmptyDayContributesNothing(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator(nil)
	if got := aggregator.Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected no summaries, got %+v", got)
	}
	if got := aggregator.Aggregate([]timecard.Interval{interval("lunch", "", 60)}); len(got) != 0 {
		t.Fatalf("expected no summaries for excluded-only day, got %+v", got)
	}
}
