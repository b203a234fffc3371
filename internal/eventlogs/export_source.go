package eventlogs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"printer-report/internal/models"
	"printer-report/internal/shared/filestorages"
	"printer-report/internal/shared/loggers"
)

// exportDecoder yields events from one export file in file order.
type exportDecoder interface {
	Next(ctx context.Context) (*models.Event, error)
}

type exportFormat struct {
	extension string
	decoder   func(logSource string, r io.Reader) exportDecoder
}

// Export formats in lookup order.
var exportFormats = []exportFormat{
	{".xml", func(s string, r io.Reader) exportDecoder { return newXMLEventDecoder(s, r) }},
	{".jsonl", func(s string, r io.Reader) exportDecoder { return newJSONEventDecoder(s, r) }},
	{".json", func(s string, r io.Reader) exportDecoder { return newJSONEventDecoder(s, r) }},
	{".csv", func(s string, r io.Reader) exportDecoder { return newCSVEventDecoder(s, r) }},
}

// exportSource reads System log exports saved as <server>.<ext> below a directory. It stands in for the
// live log on hosts without wevtutil and for replaying a past run.
type exportSource struct {
	storage filestorages.FileStorage
}

func NewExportSource(storage filestorages.FileStorage) EventSource {
	return &exportSource{storage: storage}
}

func (s *exportSource) Open(ctx context.Context, server string) (EventReader, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldLogSource, server).Logger()

	for _, format := range exportFormats {
		key := exportKey(server) + format.extension
		file, err := s.storage.Get(ctx, key)
		if err != nil {
			if errors.Is(err, filestorages.ErrFileNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to open export %s: %w", key, err)
		}

		events, err := readAll(ctx, format.decoder(server, file))
		closeErr := file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read export %s: %w", key, err)
		}
		if closeErr != nil {
			logger.Warn().Err(closeErr).Str("key", key).Msg("Failed to close export file")
		}

		// Exports are not guaranteed to be newest first; readers are.
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].TimeCreated.After(events[j].TimeCreated)
		})

		logger.Debug().Str("key", key).Int("events", len(events)).Msg("Loaded event log export")
		return &sliceReader{events: events}, nil
	}

	return nil, fmt.Errorf("%w: no export for %s", ErrSourceNotFound, server)
}

// exportKey maps a server name to a file name: `localhost` for the local machine, UNC prefixes dropped.
func exportKey(server string) string {
	if isLocal(server) {
		return "localhost"
	}
	key := strings.TrimLeft(server, `\/`)
	return strings.NewReplacer(`\`, "_", "/", "_", ":", "_").Replace(key)
}

func readAll(ctx context.Context, decoder exportDecoder) ([]*models.Event, error) {
	var events []*models.Event
	for {
		event, err := decoder.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return nil, err
		}
		events = append(events, event)
	}
}

type sliceReader struct {
	events []*models.Event
	next   int
}

func (r *sliceReader) Next(ctx context.Context) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.next >= len(r.events) {
		return nil, io.EOF
	}
	event := r.events[r.next]
	r.next++
	return event, nil
}

func (r *sliceReader) Close() error {
	r.next = len(r.events)
	return nil
}
