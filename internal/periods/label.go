package periods

import (
	"strconv"
	"time"

	"printer-report/internal/models"
)

var ordinalSuffixes = map[int]string{
	1:  "st",
	2:  "nd",
	3:  "rd",
	21: "st",
	22: "nd",
	23: "rd",
	31: "st",
}

// OrdinalDay renders the day of month of t with its English suffix: 1st, 2nd, 3rd, 4th ... 11th, 21st.
func OrdinalDay(t time.Time) string {
	suffix, ok := ordinalSuffixes[t.Day()]
	if !ok {
		suffix = "th"
	}
	return strconv.Itoa(t.Day()) + suffix
}

// FormatDay renders t as "15th March 2024".
func FormatDay(t time.Time) string {
	return OrdinalDay(t) + t.Format(" January 2006")
}

// Label picks the shortest phrase that names exactly [start, end]:
//
//	2024                                  whole year
//	March 2024                            whole month
//	15th March 2024                       single day
//	3rd - 9th March 2024                  days within one month
//	January - March 2024                  whole months within one year
//	3rd January - 9th March 2024          days across months
//	2023 - 2024                           whole years
//	November 2023 - February 2024         whole months across years
//	3rd November 2023 - 9th February 2024 anything else
func Label(start, end time.Time) string {
	loc := start.Location()
	wholeYears := start.Equal(StartOf(models.PeriodSpec{Year: start.Year()}, loc)) &&
		end.Equal(EndOf(models.PeriodSpec{Year: end.Year()}, loc))
	wholeMonths := start.Equal(StartOf(models.PeriodSpec{Year: start.Year(), Month: int(start.Month())}, loc)) &&
		end.Equal(EndOf(models.PeriodSpec{Year: end.Year(), Month: int(end.Month())}, loc))

	if start.Year() != end.Year() {
		switch {
		case wholeYears:
			return start.Format("2006") + " - " + end.Format("2006")
		case wholeMonths:
			return start.Format("January 2006") + " - " + end.Format("January 2006")
		default:
			return FormatDay(start) + " - " + FormatDay(end)
		}
	}

	if wholeYears {
		return end.Format("2006")
	}

	if start.Month() != end.Month() {
		if wholeMonths {
			return start.Format("January") + " - " + end.Format("January 2006")
		}
		return OrdinalDay(start) + start.Format(" January") + " - " + FormatDay(end)
	}

	switch {
	case wholeMonths:
		return end.Format("January 2006")
	case start.Day() == end.Day():
		return FormatDay(end)
	default:
		return OrdinalDay(start) + " - " + FormatDay(end)
	}
}
