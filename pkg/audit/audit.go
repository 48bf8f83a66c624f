package audit

import "time"

// Event records the outcome of one disruptive admin command
type Event struct {
	Command   string    `json:"command"`
	Server    string    `json:"server"`
	Region    string    `json:"region,omitempty"`
	Archive   string    `json:"archive,omitempty"`
	Outcome   string    `json:"outcome"`
	Kind      string    `json:"kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher is implemented by the audit trail backends
type Publisher interface {
	Publish(ev *Event) error
	Close() error
}

type discard struct{}

// Discard returns a Publisher that drops every event.
func Discard() Publisher {
	return discard{}
}

func (discard) Publish(*Event) error { return nil }
func (discard) Close() error         { return nil }
