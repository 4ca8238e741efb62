package logger

import (
	"testing"
	"time"
)

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("storage.load")
	m.IncrCounter("storage.load")
	m.IncrCounter("storage.load")

	if got := m.Snapshot().Counters["storage.load"]; got != 3 {
		t.Errorf("Counter = %v, want 3", got)
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("storage.save", 100*time.Millisecond)
	m.RecordTiming("storage.save", 200*time.Millisecond)
	m.RecordTiming("storage.save", 150*time.Millisecond)

	stats := m.Snapshot().Timings["storage.save"]
	if stats.Count != 3 {
		t.Errorf("Count = %v, want 3", stats.Count)
	}
	if stats.Min != 100*time.Millisecond {
		t.Errorf("Min = %v, want 100ms", stats.Min)
	}
	if stats.Max != 200*time.Millisecond {
		t.Errorf("Max = %v, want 200ms", stats.Max)
	}
	if stats.Average != 150*time.Millisecond {
		t.Errorf("Average = %v, want 150ms", stats.Average)
	}
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("a")

	snap := m.Snapshot()
	m.IncrCounter("a")

	if snap.Counters["a"] != 1 {
		t.Errorf("snapshot changed after update: %v", snap.Counters["a"])
	}
}

func TestPackageLevelMetrics(t *testing.T) {
	before := GetMetricsSnapshot().Counters["test.package"]
	IncrCounter("test.package")
	RecordTiming("test.package", time.Second)

	snap := GetMetricsSnapshot()
	if snap.Counters["test.package"] != before+1 {
		t.Errorf("Counter = %v, want %v", snap.Counters["test.package"], before+1)
	}
	if snap.Timings["test.package"].Count == 0 {
		t.Error("expected timing to be recorded")
	}
}
