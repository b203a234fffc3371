package extractors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"printer-report/internal/eventlogs"
	"printer-report/internal/models"
	"printer-report/internal/periods"
	"printer-report/internal/shared/loggers"
	"printer-report/internal/shared/metrics"
)

// JobHandler receives every job extracted inside the window, in scan order.
type JobHandler func(ctx context.Context, job *models.JobRecord) error

// Filter selects which events are print notifications and which printers are left out of the report.
type Filter struct {
	Provider       string
	EventID        uint32
	IgnorePrinters []string
}

// Extraction is what a scan leaves behind besides the jobs themselves.
type Extraction struct {
	Sources     []string
	Diagnostics []string
}

//go:generate mockgen -source=extraction_service.go -destination=./mocks/extraction_service_mock.go -package=mocks
type ExtractionService interface {
	// Extract scans the logs of servers in order, newest event first, and hands each print job inside
	// window to handle. Unparseable messages and empty logs are reported as diagnostics.
	Extract(ctx context.Context, servers []string, window models.DateRange, handle JobHandler) (*Extraction, error)
}

type extractionService struct {
	source  eventlogs.EventSource
	parser  MessageParser
	filter  Filter
	ignored map[string]struct{}
}

func NewExtractionService(source eventlogs.EventSource, parser MessageParser, filter Filter) ExtractionService {
	ignored := make(map[string]struct{}, len(filter.IgnorePrinters))
	for _, printer := range filter.IgnorePrinters {
		ignored[printer] = struct{}{}
	}
	return &extractionService{source: source, parser: parser, filter: filter, ignored: ignored}
}

func (s *extractionService) Extract(ctx context.Context, servers []string, window models.DateRange, handle JobHandler) (*Extraction, error) {
	extraction := &Extraction{Sources: append([]string(nil), servers...)}

	for _, server := range servers {
		if err := s.scan(ctx, server, window, handle, extraction); err != nil {
			return nil, err
		}
	}
	return extraction, nil
}

// scan reads one log until it runs out or reaches an event older than the window.
func (s *extractionService) scan(ctx context.Context, server string, window models.DateRange, handle JobHandler, extraction *Extraction) error {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldLogSource, server).Logger()
	started := time.Now()

	reader, err := s.source.Open(ctx, server)
	if err != nil {
		svcErr := errSourceOpenFailed(server, err)
		metricSourcesTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close event log")
		}
	}()

	var scanned, jobs int
	lastSeen := window.End
	for {
		event, err := reader.Next(ctx)
		if errors.Is(err, io.EOF) {
			if lastSeen.After(window.Start) {
				extraction.Diagnostics = append(extraction.Diagnostics,
					fmt.Sprintf("No events found on %s prior to %s", server, periods.FormatDay(lastSeen)))
			}
			break
		}
		if err != nil {
			svcErr := errSourceReadFailed(server, err)
			metricSourcesTotal.WithLabelValues(svcErr.Code).Inc()
			return svcErr
		}

		scanned++
		lastSeen = event.TimeCreated
		if event.TimeCreated.After(window.End) {
			metricEventsScannedTotal.WithLabelValues(server, outcomeOutOfWindow).Inc()
			continue
		}
		if event.TimeCreated.Before(window.Start) {
			metricEventsScannedTotal.WithLabelValues(server, outcomeOutOfWindow).Inc()
			break
		}
		if event.Provider != s.filter.Provider || event.EventID != s.filter.EventID {
			metricEventsScannedTotal.WithLabelValues(server, outcomeOther).Inc()
			continue
		}

		job, ok := s.parser.Parse(event)
		if !ok {
			metricEventsScannedTotal.WithLabelValues(server, outcomeParseError).Inc()
			extraction.Diagnostics = append(extraction.Diagnostics,
				"Error: could not parse event message\n\t"+event.Message)
			continue
		}
		if _, skip := s.ignored[job.PrinterName]; skip {
			metricEventsScannedTotal.WithLabelValues(server, outcomeIgnored).Inc()
			continue
		}

		if err := handle(ctx, job); err != nil {
			return err
		}
		jobs++
		metricEventsScannedTotal.WithLabelValues(server, outcomeExtracted).Inc()
	}

	metricSourcesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Debug().
		Int("events", scanned).
		Int("jobs", jobs).
		Dur(loggers.FieldDuration, time.Since(started)).
		Msg("Scanned event log")
	return nil
}
