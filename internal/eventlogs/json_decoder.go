package eventlogs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"printer-report/internal/models"
)

// jsonEvent matches `Get-WinEvent -LogName System | Select-Object TimeCreated, ProviderName, Id, Message |
// ConvertTo-Json`, either as one JSON array or as one object per line.
type jsonEvent struct {
	TimeCreated  string          `json:"TimeCreated"`
	ProviderName string          `json:"ProviderName"`
	ID           json.RawMessage `json:"Id"`
	Message      string          `json:"Message"`
}

// Windows PowerShell 5.1 serialises DateTime as "/Date(1710498600000)/"; PowerShell 7 writes ISO 8601.
var msDateRegex = regexp.MustCompile(`^/Date\((-?\d+)(?:[+-]\d{4})?\)/$`)

var jsonTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type jsonEventDecoder struct {
	logSource string
	reader    *bufio.Reader
	decoder   *json.Decoder
	array     bool
}

func newJSONEventDecoder(logSource string, r io.Reader) *jsonEventDecoder {
	return &jsonEventDecoder{logSource: logSource, reader: bufio.NewReader(r)}
}

func (d *jsonEventDecoder) Next(ctx context.Context) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if d.decoder == nil {
		if err := d.start(); err != nil {
			return nil, err
		}
	}

	if d.array && !d.decoder.More() {
		return nil, io.EOF
	}

	var raw jsonEvent
	if err := d.decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to decode event json: %w", err)
	}
	return raw.toEvent(d.logSource)
}

// start skips a byte order mark and leading blanks, then consumes the opening bracket when the export is
// a single JSON array. Line-delimited exports start directly with an object.
func (d *jsonEventDecoder) start() error {
	if head, err := d.reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = d.reader.Discard(len(utf8BOM))
	}

	for {
		b, err := d.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return fmt.Errorf("failed to read event json: %w", err)
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			continue
		}
		if b == '[' {
			d.array = true
		} else if err := d.reader.UnreadByte(); err != nil {
			return err
		}
		break
	}

	d.decoder = json.NewDecoder(d.reader)
	return nil
}

func (raw *jsonEvent) toEvent(logSource string) (*models.Event, error) {
	created, err := parseJSONTime(raw.TimeCreated)
	if err != nil {
		return nil, err
	}
	eventID, err := parseEventID(strings.Trim(string(raw.ID), `"`))
	if err != nil {
		return nil, err
	}

	return &models.Event{
		LogSource:   logSource,
		Provider:    raw.ProviderName,
		EventID:     eventID,
		TimeCreated: created,
		Message:     strings.TrimSpace(raw.Message),
	}, nil
}

func parseJSONTime(value string) (time.Time, error) {
	if m := msDateRegex.FindStringSubmatch(value); m != nil {
		millis, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid event time %q: %w", value, err)
		}
		return time.UnixMilli(millis).Local(), nil
	}
	for _, layout := range jsonTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.Local(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event time %q", value)
}
