package eventlogs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"printer-report/internal/models"
)

// Column names written by Event Viewer's "Save All Events As... (CSV)".
const (
	csvColumnTime     = "date and time"
	csvColumnProvider = "source"
	csvColumnEventID  = "event id"
	csvColumnMessage  = "message"
)

var csvTimeLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	time.RFC3339,
}

type csvEventDecoder struct {
	logSource string
	reader    *csv.Reader
	columns   map[string]int
}

func newCSVEventDecoder(logSource string, r io.Reader) *csvEventDecoder {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &csvEventDecoder{logSource: logSource, reader: reader}
}

func (d *csvEventDecoder) Next(ctx context.Context) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if d.columns == nil {
		if err := d.readHeader(); err != nil {
			return nil, err
		}
	}

	record, err := d.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read event csv: %w", err)
	}

	field := func(column string) string {
		idx := d.columns[column]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	created, err := parseCSVTime(field(csvColumnTime))
	if err != nil {
		return nil, err
	}
	eventID, err := parseEventID(field(csvColumnEventID))
	if err != nil {
		return nil, err
	}

	return &models.Event{
		LogSource:   d.logSource,
		Provider:    field(csvColumnProvider),
		EventID:     eventID,
		TimeCreated: created,
		Message:     field(csvColumnMessage),
	}, nil
}

func (d *csvEventDecoder) readHeader() error {
	header, err := d.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("failed to read event csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{csvColumnTime, csvColumnProvider, csvColumnEventID, csvColumnMessage} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("event csv is missing column %q", required)
		}
	}
	d.columns = columns
	return nil
}

func parseCSVTime(value string) (time.Time, error) {
	for _, layout := range csvTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event time %q", value)
}
