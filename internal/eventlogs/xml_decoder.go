package eventlogs

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"printer-report/internal/models"
)

// xmlEvent is the subset of the Windows event schema rendered by `wevtutil qe /f:RenderedXml`:
//
//	<Event xmlns='http://schemas.microsoft.com/win/2004/08/events/event'>
//	  <System>
//	    <Provider Name='Print'/>
//	    <EventID Qualifiers='0'>10</EventID>
//	    <TimeCreated SystemTime='2024-03-15T10:30:00.000000000Z'/>
//	    <Channel>System</Channel>
//	  </System>
//	  <RenderingInfo Culture='en-US'>
//	    <Message>Document 12, report.docx owned by alice was printed on HP1 via port IP_10.0.0.5. ...</Message>
//	  </RenderingInfo>
//	</Event>
type xmlEvent struct {
	System struct {
		Provider struct {
			Name string `xml:"Name,attr"`
		} `xml:"Provider"`
		EventID     string `xml:"EventID"`
		TimeCreated struct {
			SystemTime string `xml:"SystemTime,attr"`
		} `xml:"TimeCreated"`
		Channel string `xml:"Channel"`
	} `xml:"System"`
	RenderingInfo struct {
		Message string `xml:"Message"`
	} `xml:"RenderingInfo"`
}

// xmlEventDecoder reads a stream of <Event> elements. wevtutil prints them back to back without a root
// element, so the decoder skips everything that is not an Event start tag.
type xmlEventDecoder struct {
	logSource string
	decoder   *xml.Decoder
}

func newXMLEventDecoder(logSource string, r io.Reader) *xmlEventDecoder {
	return &xmlEventDecoder{logSource: logSource, decoder: xml.NewDecoder(r)}
}

func (d *xmlEventDecoder) Next(ctx context.Context) (*models.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := d.decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read event xml: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "Event" {
			continue
		}

		var raw xmlEvent
		if err := d.decoder.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("failed to decode event xml: %w", err)
		}
		return raw.toEvent(d.logSource)
	}
}

func (raw *xmlEvent) toEvent(logSource string) (*models.Event, error) {
	created, err := time.Parse(time.RFC3339Nano, raw.System.TimeCreated.SystemTime)
	if err != nil {
		return nil, fmt.Errorf("invalid event time %q: %w", raw.System.TimeCreated.SystemTime, err)
	}
	eventID, err := parseEventID(raw.System.EventID)
	if err != nil {
		return nil, err
	}

	return &models.Event{
		LogSource:   logSource,
		Provider:    raw.System.Provider.Name,
		EventID:     eventID,
		TimeCreated: created.Local(),
		Message:     strings.TrimSpace(raw.RenderingInfo.Message),
	}, nil
}
