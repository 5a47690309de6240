package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Operation status labels
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusError    = "error"
)

// RecordOperation records a network operation with its outcome
func (r *Registry) RecordOperation(operation, status string, duration time.Duration) {
	r.NetworkOperationsTotal.WithLabelValues(operation, status).Inc()
	r.NetworkOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDiagnostic counts a diagnostic of the given kind
func (r *Registry) RecordDiagnostic(kind string) {
	r.DiagnosticsTotal.WithLabelValues(kind).Inc()
}

// UpdateNetworkSize sets the people and friendship gauges
func (r *Registry) UpdateNetworkSize(people, friendships int) {
	r.PeopleTotal.Set(float64(people))
	r.FriendshipsTotal.Set(float64(friendships))
}

// RecordQuery records a GraphQL query execution
func (r *Registry) RecordQuery(status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(status).Inc()
	r.QueryDuration.Observe(duration.Seconds())
}

// WriteText writes every gathered metric family in the Prometheus text format
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
