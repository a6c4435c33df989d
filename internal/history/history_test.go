package history

import (
	"fmt"
	"testing"

	"github.com/strategic-council/screener/models"
)

func TestRetentionLimits(t *testing.T) {
	cases := map[models.Cadence]int{
		models.Daily:      30,
		models.Weekly:     12,
		models.Monthly:    12,
		models.Quarterly:  8,
		models.SemiAnnual: 4,
		models.Annual:     3,
	}
	for c, want := range cases {
		if got := RetentionLimit(c); got != want {
			t.Errorf("RetentionLimit(%s) = %d, want %d", c, got, want)
		}
	}
}

func TestAppendEvictsOldest(t *testing.T) {
	snap := NewSnapshot()
	for i := 0; i < 40; i++ {
		snap.Append(models.Daily, models.HistoryEntry{Summary: fmt.Sprintf("day %d", i)})
	}

	entries := snap.Entries[models.Daily]
	if len(entries) != 30 {
		t.Fatalf("daily retention is 30, got %d entries", len(entries))
	}
	if entries[0].Summary != "day 10" {
		t.Errorf("oldest kept entry = %q, want day 10", entries[0].Summary)
	}
	if entries[29].Summary != "day 39" {
		t.Errorf("newest entry = %q, want day 39", entries[29].Summary)
	}
}

func TestLastWindow(t *testing.T) {
	snap := NewSnapshot()
	for i := 0; i < 5; i++ {
		snap.Append(models.Weekly, models.HistoryEntry{Summary: fmt.Sprintf("week %d", i)})
	}

	last := snap.Last(models.Weekly, 3)
	if len(last) != 3 {
		t.Fatalf("Last(3) returned %d entries", len(last))
	}
	if last[0].Summary != "week 2" || last[2].Summary != "week 4" {
		t.Errorf("window = [%q .. %q], want oldest-first week 2..4", last[0].Summary, last[2].Summary)
	}

	if got := snap.Last(models.Weekly, 10); len(got) != 5 {
		t.Errorf("oversized window must return all 5, got %d", len(got))
	}
	if got := snap.Last(models.Annual, 3); got != nil {
		t.Errorf("empty cadence must return nil, got %v", got)
	}
	if got := snap.Last(models.Weekly, 0); got != nil {
		t.Errorf("zero window must return nil, got %v", got)
	}
}
