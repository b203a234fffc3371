package periods

import (
	"context"
	"time"

	"printer-report/internal/models"
	"printer-report/internal/shared/configs"
	"printer-report/internal/shared/loggers"
)

//go:generate mockgen -source=resolver.go -destination=./mocks/resolver_mock.go -package=mocks
type Resolver interface {
	// Resolve turns the requested period into a concrete window and its label.
	Resolve(ctx context.Context, period configs.PeriodConfig) (models.DateRange, error)
}

type resolver struct {
	now func() time.Time
}

// NewResolver returns a Resolver that reads the current time from now. Resolved times carry now's location.
func NewResolver(now func() time.Time) Resolver {
	return &resolver{now: now}
}

// Resolve picks the window from, in order of preference: the explicit period, the start/end date pair
// (end defaults to today), or the previous calendar month.
//
// Example with now = 2024-03-15 10:00:
//
//	{TimePeriod: "2024-02"}                     -> [2024-02-01 00:00:00, 2024-02-29 23:59:59] "February 2024"
//	{StartDate: "2024-03-01", EndDate: "today"} -> [2024-03-01 00:00:00, 2024-03-15 10:00:00] "1st - 15th March 2024"
//	{}                                          -> [2024-02-01 00:00:00, 2024-02-29 23:59:59] "February 2024"
//	{TimePeriod: "2024"}                        -> [2024-01-01 00:00:00, 2024-03-15 10:00:00] "2024"
//
// The label always describes the requested period; clamping End to now does not change it.
func (r *resolver) Resolve(ctx context.Context, period configs.PeriodConfig) (models.DateRange, error) {
	now := r.now()
	loc := now.Location()

	var startSpec, endSpec models.PeriodSpec
	switch {
	case period.TimePeriod != "":
		spec, err := ParseSpec(period.TimePeriod, now)
		if err != nil {
			return models.DateRange{}, err
		}
		startSpec, endSpec = spec, spec
	case period.StartDate != "":
		spec, err := ParseSpec(period.StartDate, now)
		if err != nil {
			return models.DateRange{}, err
		}
		startSpec = spec

		endValue := period.EndDate
		if endValue == "" {
			endValue = today
		}
		if endSpec, err = ParseSpec(endValue, now); err != nil {
			return models.DateRange{}, err
		}
	default:
		startSpec = previousMonth(now)
		endSpec = startSpec
	}

	start := StartOf(startSpec, loc)
	end := EndOf(endSpec, loc)
	if start.After(end) {
		return models.DateRange{}, errEmptyRange("start date is after end date")
	}
	label := Label(start, end)

	if end.After(now) {
		end = now
	}
	if start.After(end) {
		return models.DateRange{}, errEmptyRange("requested period " + label + " has not started yet")
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldPeriod, label).
		Time("start", start).
		Time("end", end).
		Msg("resolved reporting period")

	return models.DateRange{Start: start, End: end, Label: label}, nil
}
