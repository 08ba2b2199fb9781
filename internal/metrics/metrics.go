package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FitCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_calculations_total",
			Help: "Total number of completed fit calculations",
		},
		[]string{"category", "ambition"},
	)

	FitValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fit_validation_failures_total",
			Help: "Total number of fit requests rejected by input validation",
		},
	)

	FitWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fit_warnings_total",
			Help: "Total number of warnings attached to fit results",
		},
		[]string{"type", "severity"},
	)

	FitConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fit_confidence_score",
			Help:    "Confidence score of completed fit calculations",
			Buckets: []float64{60, 70, 80, 90, 100},
		},
	)
)

// ObserveFit records one successful calculation.
func ObserveFit(category, ambition string, confidence int) {
	FitCalculations.WithLabelValues(category, ambition).Inc()
	FitConfidence.Observe(float64(confidence))
}

func ObserveWarning(warningType, severity string) {
	FitWarnings.WithLabelValues(warningType, severity).Inc()
}
