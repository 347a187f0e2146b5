package models

import "time"

/**
 * Single entry of the user-visible event log
 * @property {int64} seq - Monotonic sequence number assigned by the sink
 * @property {string} time - Append time in RFC3339 format
 * @property {string} text - Entry text, may contain multiple lines
 */
type LogEntry struct {
	Seq  int64  `json:"seq"`
	Time string `json:"time"`
	Text string `json:"text"`
}

// NewLogEntry stamps text with the current time. The sequence number is
// assigned when the entry is appended to the sink.
func NewLogEntry(text string) LogEntry {
	return LogEntry{
		Time: time.Now().Format(time.RFC3339Nano),
		Text: text,
	}
}
