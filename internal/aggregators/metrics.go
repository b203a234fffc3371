package aggregators

import (
	"printer-report/internal/shared/metrics"
)

var (
	// metricJobsAggregatedTotal counts jobs handed to the aggregator, labelled with the error code of a
	// failed directory lookup or empty on success.
	metricJobsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "jobs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricPagesAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "pages_total",
		},
	)

	// metricDirectoryLookupsTotal counts directory queries; repeated users are served from the run cache.
	metricDirectoryLookupsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "directory_lookups_total",
		},
	)
)
