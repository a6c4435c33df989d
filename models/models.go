package models

// Item is a single collected news record. All text fields are sanitized plain
// text; items are immutable once constructed and are identified positionally
// within a scoring batch, not by a stable key.
type Item struct {
	Source         string `json:"source"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	PublishedLabel string `json:"date"`
	Link           string `json:"link"`
}

// ScoredItem is an Item annotated by the tier-1 scorer.
type ScoredItem struct {
	Item
	Score  int    `json:"score"`
	Reason string `json:"reason,omitempty"`
}

// FallbackScore is the neutral score assigned to every item of a batch whose
// scoring call or response parsing failed.
const FallbackScore = 50

// Cadence is one of the six fixed report frequencies.
type Cadence string

const (
	Daily      Cadence = "daily"
	Weekly     Cadence = "weekly"
	Monthly    Cadence = "monthly"
	Quarterly  Cadence = "quarterly"
	SemiAnnual Cadence = "semi_annual"
	Annual     Cadence = "annual"
)

// AllCadences returns every cadence ordered from finest to coarsest. Schedule
// output and the persisted history document both follow this order.
func AllCadences() []Cadence {
	return []Cadence{Daily, Weekly, Monthly, Quarterly, SemiAnnual, Annual}
}

// Label returns the human-readable report label used in email subjects and
// CLI output.
func (c Cadence) Label() string {
	switch c {
	case Daily:
		return "Daily Briefing"
	case Weekly:
		return "Weekly Strategy"
	case Monthly:
		return "Monthly Strategy"
	case Quarterly:
		return "Quarterly Strategy"
	case SemiAnnual:
		return "Semi-Annual Strategy"
	case Annual:
		return "Annual Strategy"
	}
	return string(c)
}

// Valid reports whether c is one of the six known cadences.
func (c Cadence) Valid() bool {
	switch c {
	case Daily, Weekly, Monthly, Quarterly, SemiAnnual, Annual:
		return true
	}
	return false
}

// HistoryEntry is one compressed report memory. Immutable once written.
type HistoryEntry struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}
