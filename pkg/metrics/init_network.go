package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.PeopleTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_people_total",
			Help: "Total number of people in the network",
		},
	)

	r.FriendshipsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialgraph_friendships_total",
			Help: "Total number of undirected friendships in the network",
		},
	)

	r.NetworkOperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_operations_total",
			Help: "Total number of network operations",
		},
		[]string{"operation", "status"},
	)

	r.NetworkOperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialgraph_operation_duration_seconds",
			Help:    "Network operation duration in seconds",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01},
		},
		[]string{"operation"},
	)

	r.DiagnosticsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialgraph_diagnostics_total",
			Help: "Total number of diagnostics emitted for rejected operations",
		},
		[]string{"kind"},
	)
}
