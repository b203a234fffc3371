package app

import (
	"printer-report/internal/shared/metrics"
)

var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLastRunTimestamp = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "last_success_timestamp_seconds",
		},
	)

	metricReportedJobs = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "reported_jobs",
		},
	)
)
