package extractors

import (
	"printer-report/internal/shared/metrics"
)

const (
	outcomeExtracted   = "extracted"
	outcomeParseError  = "parse_error"
	outcomeIgnored     = "ignored"
	outcomeOutOfWindow = "out_of_window"
	outcomeOther       = "other"
)

var (
	// metricEventsScannedTotal counts events read from each log source by what became of them.
	metricEventsScannedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "events_scanned_total",
		},
		[]string{metrics.FieldLogSource, "outcome"},
	)

	metricSourcesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "sources_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
