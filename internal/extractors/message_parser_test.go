package extractors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printer-report/internal/models"
)

func TestMessageParser_Parse(t *testing.T) {
	t.Parallel()

	printedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		want    *models.JobRecord
	}{
		{
			name:    "with application",
			message: "Document 12, Microsoft Word - report.docx owned by alice was printed on HP1 via port IP_10.0.0.5.  Size in bytes: 2048; pages printed: 3",
			want: &models.JobRecord{
				PrintedAt:      printedAt,
				DocumentNumber: 12,
				Application:    "Microsoft Word",
				DocumentName:   "report.docx",
				UserName:       "alice",
				PrinterName:    "HP1",
				PortName:       "IP_10.0.0.5",
				Bytes:          2048,
				Pages:          3,
			},
		},
		{
			name:    "without application",
			message: "Document 7, Test Page owned by bob was printed on Colour Laser via port USB001. Size in bytes: 104857; pages printed: 1",
			want: &models.JobRecord{
				PrintedAt:      printedAt,
				DocumentNumber: 7,
				DocumentName:   "Test Page",
				UserName:       "bob",
				PrinterName:    "Colour Laser",
				PortName:       "USB001",
				Bytes:          104857,
				Pages:          1,
			},
		},
	}

	parser := NewMessageParser()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parser.Parse(&models.Event{TimeCreated: printedAt, Message: tt.message})
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessageParser_Parse_NoMatch(t *testing.T) {
	t.Parallel()

	messages := []string{
		"",
		"The print spooler service entered the running state.",
		"Document 12, report.docx owned by alice was printed on HP1 via port IP_10.0.0.5. Size in bytes: many; pages printed: 3",
		"Document 12, report.docx owned by alice smith was printed on HP1 via port P. Size in bytes: 1; pages printed: 3",
	}

	parser := NewMessageParser()
	for _, message := range messages {
		job, ok := parser.Parse(&models.Event{Message: message})
		assert.False(t, ok, message)
		assert.Nil(t, job)
	}
}
