package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFit(t *testing.T) {
	before := testutil.ToFloat64(FitCalculations.WithLabelValues("road", "balanced"))
	ObserveFit("road", "balanced", 76)
	assert.Equal(t, before+1, testutil.ToFloat64(FitCalculations.WithLabelValues("road", "balanced")))
}

func TestObserveWarning(t *testing.T) {
	before := testutil.ToFloat64(FitWarnings.WithLabelValues("drop_risk", "critical"))
	ObserveWarning("drop_risk", "critical")
	ObserveWarning("drop_risk", "critical")
	assert.Equal(t, before+2, testutil.ToFloat64(FitWarnings.WithLabelValues("drop_risk", "critical")))
}
