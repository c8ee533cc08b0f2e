package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CalculationsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huella_calculations_saved_total",
			Help: "Total footprint calculations persisted",
		},
		[]string{"level"},
	)

	SaveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "huella_save_duration_seconds",
			Help:    "Compute-and-persist duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	HistoryReads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "huella_history_reads_total",
			Help: "Total history list reads served",
		},
	)
)

func init() {
	prometheus.MustRegister(CalculationsSaved, SaveDuration, HistoryReads)
}
