// Package metrics holds the prometheus instrumentation shared by the store
// and the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsAdded counts records appended per entity type.
	RecordsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetops_records_added_total",
		Help: "Number of records added, by entity type.",
	}, []string{"entity"})

	// ValidationFailures counts rejected mutations per entity type.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetops_validation_failures_total",
		Help: "Number of mutations rejected by validation, by entity type.",
	}, []string{"entity"})

	// DocumentWrites counts whole-document rewrites per entity type.
	DocumentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetops_document_writes_total",
		Help: "Number of whole-document saves, by entity type.",
	}, []string{"entity"})

	// HTTPRequests counts handled HTTP requests.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetops_http_requests_total",
		Help: "Number of HTTP requests handled, by method, path and status.",
	}, []string{"method", "path", "status"})
)
