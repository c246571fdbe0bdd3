package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestExpvarRecorderAggregates(t *testing.T) {
	rec := NewExpvarRecorder("")
	rec.Observe("insert", true, 10*time.Millisecond)
	rec.Observe("insert", true, 5*time.Millisecond)
	rec.Observe("insert", false, 2*time.Millisecond)
	rec.Observe("select", true, time.Millisecond)
	rec.Observe("", true, time.Second) // unnamed operations are dropped

	snap := rec.Snapshot()
	if got := snap.Results["insert"]["success"]; got != 2 {
		t.Fatalf("insert success = %d, want 2", got)
	}
	if got := snap.Results["insert"]["error"]; got != 1 {
		t.Fatalf("insert error = %d, want 1", got)
	}
	if got := snap.Results["select"]["success"]; got != 1 {
		t.Fatalf("select success = %d, want 1", got)
	}
	if got := snap.DurationsMS["insert"]; got != 17 {
		t.Fatalf("insert duration = %v ms, want 17", got)
	}
	if len(snap.Results) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(snap.Results))
	}
}

func TestExpvarSnapshotIsACopy(t *testing.T) {
	rec := NewExpvarRecorder("")
	rec.Observe("insert", true, time.Millisecond)

	snap := rec.Snapshot()
	snap.Results["insert"]["success"] = 99
	snap.DurationsMS["insert"] = 99

	fresh := rec.Snapshot()
	if fresh.Results["insert"]["success"] != 1 {
		t.Fatalf("snapshot mutation leaked into recorder")
	}
	if fresh.DurationsMS["insert"] != 1 {
		t.Fatalf("snapshot mutation leaked into recorder durations")
	}
}

func TestExpvarRecorderGeneratesUniqueNames(t *testing.T) {
	a := NewExpvarRecorder("")
	b := NewExpvarRecorder("")
	if a.Name() == "" || a.Name() == b.Name() {
		t.Fatalf("expected distinct generated names, got %q and %q", a.Name(), b.Name())
	}
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusRecorder(reg, "")
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	rec.Observe("insert", true, 3*time.Millisecond)
	rec.Observe("insert", true, 3*time.Millisecond)
	rec.Observe("insert", false, 3*time.Millisecond)
	rec.Observe("", false, time.Second)

	if got := testutil.ToFloat64(rec.ops.WithLabelValues("insert", "success")); got != 2 {
		t.Fatalf("insert success counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rec.ops.WithLabelValues("insert", "error")); got != 1 {
		t.Fatalf("insert error counter = %v, want 1", got)
	}
}

func TestPrometheusRecorderRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusRecorder(reg, "hotel"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPrometheusRecorder(reg, "hotel"); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}
