package mailers

import (
	"printer-report/internal/shared/metrics"
)

var (
	metricMailsSentTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMail,
			Name:      "sent_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
