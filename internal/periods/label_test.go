package periods

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalDay(t *testing.T) {
	t.Parallel()

	expected := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 14: "14th",
		21: "21st", 22: "22nd", 23: "23rd", 24: "24th",
		30: "30th", 31: "31st",
	}

	for day, want := range expected {
		day := day
		want := want
		t.Run(fmt.Sprint(day), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, OrdinalDay(time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)))
		})
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	endDay := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{name: "whole year", start: day(2024, 1, 1), end: endDay(2024, 12, 31), expected: "2024"},
		{name: "whole month", start: day(2024, 3, 1), end: endDay(2024, 3, 31), expected: "March 2024"},
		{name: "single day", start: day(2024, 3, 15), end: endDay(2024, 3, 15), expected: "15th March 2024"},
		{name: "days within month", start: day(2024, 3, 3), end: endDay(2024, 3, 9), expected: "3rd - 9th March 2024"},
		{name: "whole months within year", start: day(2024, 1, 1), end: endDay(2024, 3, 31), expected: "January - March 2024"},
		{name: "days across months", start: day(2024, 1, 3), end: endDay(2024, 3, 9), expected: "3rd January - 9th March 2024"},
		{name: "whole years", start: day(2023, 1, 1), end: endDay(2024, 12, 31), expected: "2023 - 2024"},
		{name: "whole months across years", start: day(2023, 11, 1), end: endDay(2024, 2, 29), expected: "November 2023 - February 2024"},
		{name: "days across years", start: day(2023, 11, 3), end: endDay(2024, 2, 9), expected: "3rd November 2023 - 9th February 2024"},
		{name: "clamped end is not a whole month", start: day(2024, 3, 1), end: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), expected: "1st - 15th March 2024"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Label(tt.start, tt.end))
		})
	}
}

func TestFormatDay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "22nd December 2023", FormatDay(time.Date(2023, 12, 22, 8, 0, 0, 0, time.UTC)))
}
