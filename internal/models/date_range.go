package models

import "time"

// DateRange is the inclusive reporting window resolved for one run.
//
// Label describes the requested period; it is computed before End is clamped to the current time, so a
// window for the current month still reads "March 2024" even though End stops at "now".
type DateRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside [Start, End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
