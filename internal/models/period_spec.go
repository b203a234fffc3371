package models

// PeriodSpec is a calendar period as typed by the operator: a year with an optional month and an
// optional day. Zero Month or Day means the component was omitted.
//
// Examples:
//
//	"2024"       -> PeriodSpec{Year: 2024}
//	"2024-03"    -> PeriodSpec{Year: 2024, Month: 3}
//	"24-03-15"   -> PeriodSpec{Year: 2024, Month: 3, Day: 15}
type PeriodSpec struct {
	Year  int
	Month int
	Day   int
}

func (p PeriodSpec) HasMonth() bool {
	return p.Month != 0
}

func (p PeriodSpec) HasDay() bool {
	return p.Day != 0
}
