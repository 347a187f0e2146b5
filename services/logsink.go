package services

import (
	"sync"

	"fastos/internal/models"
)

const subscriberBuffer = 256

// LogSink is the append-only, in-memory event log shown to the user. Appends
// are serialized under a single mutex so concurrent writers can never lose or
// interleave an entry, and every subscriber sees entries in append order.
type LogSink struct {
	mu      sync.Mutex
	entries []models.LogEntry
	nextSeq int64
	subs    map[int]chan models.LogEntry
	nextSub int
}

func NewLogSink() *LogSink {
	return &LogSink{
		nextSeq: 1,
		subs:    make(map[int]chan models.LogEntry),
	}
}

/**
 * Append a text line to the log
 * @param {string} text - Entry text, may span multiple lines
 * @returns {models.LogEntry} Returns the stamped entry as stored
 * @description
 * - Assigns the next sequence number under the sink lock
 * - Fans the entry out to all live subscribers
 * - A subscriber that has fallen subscriberBuffer entries behind is skipped
 *   rather than blocking the writer
 */
func (s *LogSink) Append(text string) models.LogEntry {
	entry := models.NewLogEntry(text)

	s.mu.Lock()
	entry.Seq = s.nextSeq
	s.nextSeq++
	s.entries = append(s.entries, entry)
	for _, ch := range s.subs {
		select {
		case ch <- entry:
		default:
		}
	}
	s.mu.Unlock()

	return entry
}

// Snapshot returns a copy of the full log history in append order.
func (s *LogSink) Snapshot() []models.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Since returns entries with a sequence number greater than seq.
func (s *LogSink) Since(seq int64) []models.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.LogEntry
	for _, e := range s.entries {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

func (s *LogSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

/**
 * Subscribe to entries appended after this call
 * @returns {<-chan models.LogEntry} Channel of new entries in append order
 * @returns {func()} Cancel function; closes the channel and frees the slot
 */
func (s *LogSink) Subscribe() (<-chan models.LogEntry, func()) {
	ch := make(chan models.LogEntry, subscriberBuffer)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}
