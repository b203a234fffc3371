package models

import "time"

// JobRecord is a print job parsed out of one print-notification event. It only lives long enough to be
// rolled up into the run's counters and, when requested, listed in the report details.
type JobRecord struct {
	PrintedAt      time.Time
	DocumentNumber int64
	Application    string
	DocumentName   string
	UserName       string
	PrinterName    string
	PortName       string
	Bytes          int64
	Pages          int64
}
