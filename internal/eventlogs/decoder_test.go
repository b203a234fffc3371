package eventlogs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printer-report/internal/models"
)

const renderedXML = `<Event xmlns='http://schemas.microsoft.com/win/2004/08/events/event'><System><Provider Name='Microsoft-Windows-PrintService'/><EventID>307</EventID><TimeCreated SystemTime='2024-03-15T11:00:00.000000000Z'/><Channel>System</Channel></System><RenderingInfo Culture='en-US'><Message>Not a print event.</Message></RenderingInfo></Event>
<Event xmlns='http://schemas.microsoft.com/win/2004/08/events/event'><System><Provider Name='Print'/><EventID Qualifiers='0'>10</EventID><TimeCreated SystemTime='2024-03-15T10:30:00.500000000Z'/><Channel>System</Channel></System><RenderingInfo Culture='en-US'><Message>Document 12, report.docx owned by alice was printed on HP1 via port IP_10.0.0.5.  Size in bytes: 2048; pages printed: 3
</Message></RenderingInfo></Event>`

func drain(t *testing.T, decoder interface {
	Next(ctx context.Context) (*models.Event, error)
}) []*models.Event {
	t.Helper()

	var events []*models.Event
	for {
		event, err := decoder.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err)
		events = append(events, event)
	}
}

func TestXMLEventDecoder(t *testing.T) {
	t.Parallel()

	events := drain(t, newXMLEventDecoder("print01", strings.NewReader(renderedXML)))
	require.Len(t, events, 2)

	assert.Equal(t, "Microsoft-Windows-PrintService", events[0].Provider)
	assert.Equal(t, uint32(307), events[0].EventID)

	event := events[1]
	assert.Equal(t, "print01", event.LogSource)
	assert.Equal(t, "Print", event.Provider)
	assert.Equal(t, uint32(10), event.EventID)
	assert.True(t, time.Date(2024, 3, 15, 10, 30, 0, 500_000_000, time.UTC).Equal(event.TimeCreated))
	assert.Equal(t, "Document 12, report.docx owned by alice was printed on HP1 via port IP_10.0.0.5.  Size in bytes: 2048; pages printed: 3", event.Message)
}

func TestXMLEventDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"bad time", `<Event><System><EventID>10</EventID><TimeCreated SystemTime='yesterday'/></System></Event>`},
		{"bad id", `<Event><System><EventID>ten</EventID><TimeCreated SystemTime='2024-03-15T10:30:00Z'/></System></Event>`},
		{"truncated", `<Event><System><EventID>10</EventID>`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newXMLEventDecoder("print01", strings.NewReader(tt.input)).Next(context.Background())
			require.Error(t, err)
			assert.NotErrorIs(t, err, io.EOF)
		})
	}
}

func TestJSONEventDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name: "array with legacy dates",
			input: "\ufeff[\r\n" +
				`{"TimeCreated":"/Date(1710498600000)/","ProviderName":"Print","Id":10,"Message":"Document 1, a owned by bob was printed on HP1 via port P. Size in bytes: 1; pages printed: 1"},` +
				`{"TimeCreated":"/Date(1710495000000)/","ProviderName":"Print","Id":10,"Message":"second"}` +
				"\r\n]",
		},
		{
			name: "object per line",
			input: `{"TimeCreated":"2024-03-15T10:30:00Z","ProviderName":"Print","Id":"10","Message":"Document 1, a owned by bob was printed on HP1 via port P. Size in bytes: 1; pages printed: 1"}` + "\n" +
				`{"TimeCreated":"2024-03-15T09:30:00Z","ProviderName":"Print","Id":10,"Message":"second"}` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			events := drain(t, newJSONEventDecoder("print01", strings.NewReader(tt.input)))
			require.Len(t, events, 2)
			assert.Equal(t, "Print", events[0].Provider)
			assert.Equal(t, uint32(10), events[0].EventID)
			assert.True(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC).Equal(events[0].TimeCreated))
			assert.True(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC).Equal(events[1].TimeCreated))
			assert.Equal(t, "second", events[1].Message)
		})
	}
}

func TestJSONEventDecoder_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, drain(t, newJSONEventDecoder("print01", strings.NewReader("  \n"))))
	assert.Empty(t, drain(t, newJSONEventDecoder("print01", strings.NewReader("[]"))))
}

func TestJSONEventDecoder_BadTime(t *testing.T) {
	t.Parallel()

	input := `[{"TimeCreated":"noon","ProviderName":"Print","Id":10,"Message":"x"}]`
	_, err := newJSONEventDecoder("print01", strings.NewReader(input)).Next(context.Background())
	assert.Error(t, err)
}

func TestCSVEventDecoder(t *testing.T) {
	t.Parallel()

	input := "Level,Date and Time,Source,Event ID,Task Category,Message\r\n" +
		"Information,3/15/2024 10:30:00 AM,Print,10,None,\"Document 12, report.docx owned by alice was printed on HP1 via port IP_10.0.0.5. Size in bytes: 2048; pages printed: 3\"\r\n" +
		"Information,2024-03-14 16:05:09,Service Control Manager,7036,None,The service entered the running state.\r\n"

	events := drain(t, newCSVEventDecoder("print01", strings.NewReader(input)))
	require.Len(t, events, 2)

	assert.Equal(t, "Print", events[0].Provider)
	assert.Equal(t, uint32(10), events[0].EventID)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local), events[0].TimeCreated)
	assert.Contains(t, events[0].Message, "owned by alice")

	assert.Equal(t, "Service Control Manager", events[1].Provider)
	assert.Equal(t, uint32(7036), events[1].EventID)
	assert.Equal(t, time.Date(2024, 3, 14, 16, 5, 9, 0, time.Local), events[1].TimeCreated)
}

func TestCSVEventDecoder_MissingColumn(t *testing.T) {
	t.Parallel()

	input := "Date and Time,Source,Message\r\n3/15/2024 10:30:00 AM,Print,x\r\n"
	_, err := newCSVEventDecoder("print01", strings.NewReader(input)).Next(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event id")
}

func TestParseEventID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    uint32
		wantErr bool
	}{
		{"10", 10, false},
		{" 10 ", 10, false},
		{"1073741834", 10, false},
		{"-1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseEventID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
