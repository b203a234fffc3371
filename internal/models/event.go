package models

import "time"

// Event is one raw record read from a Windows event log: who produced it, its numeric id, when it was
// generated and its rendered free-text message.
type Event struct {
	LogSource   string
	Provider    string
	EventID     uint32
	TimeCreated time.Time
	Message     string
}
