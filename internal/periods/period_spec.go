package periods

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"printer-report/internal/models"
)

const today = "today"

var periodRegex = regexp.MustCompile(`^(\d{2,4})(?:-(\d{1,2})(?:-(\d{1,2}))?)?$`)

// ParseSpec reads YYYY, YYYY-MM, YYYY-MM-DD or "today" (any case). Years below 100 are taken as 2000+year.
// "today" resolves against now.
func ParseSpec(value string, now time.Time) (models.PeriodSpec, error) {
	trimmed := strings.TrimSpace(value)
	if strings.EqualFold(trimmed, today) {
		return models.PeriodSpec{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}, nil
	}

	matches := periodRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return models.PeriodSpec{}, errUnrecognisedDate(value)
	}

	// the regex guarantees digits, so Atoi cannot fail on non-empty groups
	year, _ := strconv.Atoi(matches[1])
	if year < 100 {
		year += 2000
	}
	spec := models.PeriodSpec{Year: year}
	if matches[2] != "" {
		spec.Month, _ = strconv.Atoi(matches[2])
		if spec.Month < 1 || spec.Month > 12 {
			return models.PeriodSpec{}, errDateOutOfRange(value, fmt.Errorf("month %d out of range", spec.Month))
		}
	}
	if matches[3] != "" {
		spec.Day, _ = strconv.Atoi(matches[3])
		if last := daysIn(spec.Year, time.Month(spec.Month)); spec.Day < 1 || spec.Day > last {
			return models.PeriodSpec{}, errDateOutOfRange(value, fmt.Errorf("day %d out of range 1-%d", spec.Day, last))
		}
	}
	return spec, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOf returns the first instant of the period: omitted month and day default to the first.
func StartOf(spec models.PeriodSpec, loc *time.Location) time.Time {
	month := time.January
	if spec.HasMonth() {
		month = time.Month(spec.Month)
	}
	day := 1
	if spec.HasDay() {
		day = spec.Day
	}
	return time.Date(spec.Year, month, day, 0, 0, 0, 0, loc)
}

// EndOf returns the last second of the period: 23:59:59 on the given day, on the last day of the month
// when the day is omitted, or on December 31st when the month is omitted too.
func EndOf(spec models.PeriodSpec, loc *time.Location) time.Time {
	switch {
	case !spec.HasMonth():
		return time.Date(spec.Year, time.December, 31, 23, 59, 59, 0, loc)
	case !spec.HasDay():
		// day 0 of the following month is the last day of this one
		return time.Date(spec.Year, time.Month(spec.Month)+1, 0, 23, 59, 59, 0, loc)
	default:
		return time.Date(spec.Year, time.Month(spec.Month), spec.Day, 23, 59, 59, 0, loc)
	}
}

// previousMonth returns the calendar month before now's.
func previousMonth(now time.Time) models.PeriodSpec {
	year, month := now.Year(), int(now.Month())-1
	if month == 0 {
		year--
		month = 12
	}
	return models.PeriodSpec{Year: year, Month: month}
}
