package periods

import (
	"testing"
	"time"

	"printer-report/internal/models"
	"printer-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected models.PeriodSpec
	}{
		{name: "year", input: "2009", expected: models.PeriodSpec{Year: 2009}},
		{name: "year and month", input: "2009-01", expected: models.PeriodSpec{Year: 2009, Month: 1}},
		{name: "full date", input: "2009-01-01", expected: models.PeriodSpec{Year: 2009, Month: 1, Day: 1}},
		{name: "single digit parts", input: "2024-3-5", expected: models.PeriodSpec{Year: 2024, Month: 3, Day: 5}},
		{name: "two digit year", input: "09", expected: models.PeriodSpec{Year: 2009}},
		{name: "two digit year with month", input: "24-02", expected: models.PeriodSpec{Year: 2024, Month: 2}},
		{name: "today", input: "today", expected: models.PeriodSpec{Year: 2024, Month: 3, Day: 15}},
		{name: "today any case", input: "ToDaY", expected: models.PeriodSpec{Year: 2024, Month: 3, Day: 15}},
		{name: "leap day", input: "2024-02-29", expected: models.PeriodSpec{Year: 2024, Month: 2, Day: 29}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec, err := ParseSpec(tt.input, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec)
		})
	}
}

func TestParseSpec_Unrecognised(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "yesterday", "2024/03", "March 2024", "2024-03-15T10:00", "1", "20245"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSpec(input, fixedNow)
			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "PERIOD_1000", svcErr.Code)
			assert.True(t, svcErr.IsInvalidArgument())
			assert.Equal(t, "Couldn't interpret '"+input+"' as a date.", svcErr.Message)
		})
	}
}

func TestParseSpec_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"2024-13", "2024-00-01", "2023-02-29", "2024-04-31"} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSpec(input, fixedNow)
			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "PERIOD_1001", svcErr.Code)
		})
	}
}

func TestStartOfEndOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		spec  models.PeriodSpec
		start time.Time
		end   time.Time
	}{
		{
			name:  "year",
			spec:  models.PeriodSpec{Year: 2023},
			start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:  "leap february",
			spec:  models.PeriodSpec{Year: 2024, Month: 2},
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:  "common february",
			spec:  models.PeriodSpec{Year: 2023, Month: 2},
			start: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name:  "december rolls over correctly",
			spec:  models.PeriodSpec{Year: 2023, Month: 12},
			start: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:  "april has thirty days",
			spec:  models.PeriodSpec{Year: 2024, Month: 4},
			start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC),
		},
		{
			name:  "single day",
			spec:  models.PeriodSpec{Year: 2024, Month: 3, Day: 15},
			start: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.start, StartOf(tt.spec, time.UTC))
			assert.Equal(t, tt.end, EndOf(tt.spec, time.UTC))
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.PeriodSpec{Year: 2024, Month: 2}, previousMonth(fixedNow))
	assert.Equal(t, models.PeriodSpec{Year: 2023, Month: 12},
		previousMonth(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
}
