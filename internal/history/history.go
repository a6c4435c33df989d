package history

import (
	"github.com/strategic-council/screener/models"
)

// Snapshot is the in-memory history: an ordered sequence of entries per
// cadence, insertion order = chronological order. It is owned by the pipeline
// for the duration of a run and persisted once at the end.
type Snapshot struct {
	Entries map[models.Cadence][]models.HistoryEntry
}

// NewSnapshot returns an empty snapshot with a slot for every cadence.
func NewSnapshot() *Snapshot {
	entries := make(map[models.Cadence][]models.HistoryEntry, len(models.AllCadences()))
	for _, c := range models.AllCadences() {
		entries[c] = nil
	}
	return &Snapshot{Entries: entries}
}

// RetentionLimit returns the maximum number of entries kept for a cadence,
// oldest evicted first.
func RetentionLimit(c models.Cadence) int {
	switch c {
	case models.Daily:
		return 30
	case models.Weekly:
		return 12
	case models.Monthly:
		return 12
	case models.Quarterly:
		return 8
	case models.SemiAnnual:
		return 4
	case models.Annual:
		return 3
	}
	return 10
}

// Append adds an entry for cadence and immediately truncates that sequence to
// its retention limit, keeping only the newest entries.
func (s *Snapshot) Append(c models.Cadence, e models.HistoryEntry) {
	entries := append(s.Entries[c], e)
	if limit := RetentionLimit(c); len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	s.Entries[c] = entries
}

// Last returns up to n most recent entries for cadence, oldest first.
func (s *Snapshot) Last(c models.Cadence, n int) []models.HistoryEntry {
	entries := s.Entries[c]
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}
