package usecase_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"pnr-quote-service/pkg/metrics"
)

func newTestMetrics() (*metrics.Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return metrics.NewMetrics("test", reg), reg
}

// counterValue sums every series of the named counter whose labels include
// the given label pairs.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != "test_"+name {
			continue
		}
		for _, m := range family.GetMetric() {
			if !hasLabels(m.GetLabel(), labels) {
				continue
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func hasLabels[L interface {
	GetName() string
	GetValue() string
}](pairs []L, want map[string]string) bool {
	found := 0
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; ok && v == p.GetValue() {
			found++
		}
	}
	return found == len(want)
}
