// Package telemetry exposes process metrics for the demo's error handling
// paths. Counters register on the default prometheus registry; the demo does
// not serve them, it only proves the reactions fire.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MissingFileReactions counts typed-introspection hits on missing-file
	// contexts, labeled by the demo scenario that detected them.
	MissingFileReactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reportdemo_missing_file_reactions_total",
			Help: "Total number of missing-file contexts detected during introspection",
		},
		[]string{"scenario"},
	)

	// ProjectionsEmitted counts APIError records handed to the structured
	// sink.
	ProjectionsEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reportdemo_projections_emitted_total",
			Help: "Total number of APIError records emitted to the structured sink",
		},
	)
)
