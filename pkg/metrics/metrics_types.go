package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the social graph
type Registry struct {
	// Network Metrics
	PeopleTotal              prometheus.Gauge
	FriendshipsTotal         prometheus.Gauge
	NetworkOperationsTotal   *prometheus.CounterVec
	NetworkOperationDuration *prometheus.HistogramVec
	DiagnosticsTotal         *prometheus.CounterVec

	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initNetworkMetrics()
	r.initQueryMetrics()

	return r
}
