package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Rendered.WithLabelValues("api").Inc()
	m.Rendered.WithLabelValues("api").Inc()
	m.Rejected.WithLabelValues("invalid_item").Inc()
	m.RenderSeconds.Observe(0.01)

	if got := testutil.ToFloat64(m.Rendered.WithLabelValues("api")); got != 2 {
		t.Errorf("rendered{api} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Rejected.WithLabelValues("invalid_item")); got != 1 {
		t.Errorf("rejected{invalid_item} = %v, want 1", got)
	}
	if n, err := testutil.GatherAndCount(reg, "receipt_render_seconds"); err != nil || n != 1 {
		t.Errorf("render histogram count = %d, err = %v", n, err)
	}
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	defer func() {
		if recover() == nil {
			t.Error("registering the same collectors twice did not panic")
		}
	}()
	New(reg)
}
