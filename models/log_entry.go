package models

import "time"

// LogEntry represents a single recorded request/response pair. Entries are
// immutable once written: there is no update or delete path, ids are assigned
// at insert and strictly increasing, and the timestamp is never mutated.
type LogEntry struct {
	ID        int64     `json:"id"`
	Endpoint  string    `json:"endpoint"`
	InputText string    `json:"input_text"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
