package screener

import (
	"time"

	"github.com/strategic-council/screener/models"
)

// DueCadences returns the report cadences due at t, finest first. It is a
// pure function of the civil date: daily is always due, weekly on Saturdays,
// monthly on the 1st, quarterly on Jan/Apr/Jul/Oct 1st, semi-annual on
// Jan/Jul 1st, annual on Jan 1st.
func DueCadences(t time.Time) []models.Cadence {
	due := []models.Cadence{models.Daily}

	if t.Weekday() == time.Saturday {
		due = append(due, models.Weekly)
	}
	if t.Day() == 1 {
		due = append(due, models.Monthly)
	}
	if t.Day() == 1 {
		switch t.Month() {
		case time.January, time.April, time.July, time.October:
			due = append(due, models.Quarterly)
		}
		switch t.Month() {
		case time.January, time.July:
			due = append(due, models.SemiAnnual)
		}
		if t.Month() == time.January {
			due = append(due, models.Annual)
		}
	}
	return due
}

// ContextSource maps a coarse cadence to the finer cadence whose recent
// summaries feed its accumulated context, and how many of them. daily has no
// source; ok is false.
func ContextSource(c models.Cadence) (source models.Cadence, count int, ok bool) {
	switch c {
	case models.Weekly:
		return models.Daily, 7, true
	case models.Monthly:
		return models.Weekly, 4, true
	case models.Quarterly:
		return models.Monthly, 3, true
	case models.SemiAnnual:
		return models.Quarterly, 2, true
	case models.Annual:
		return models.SemiAnnual, 2, true
	}
	return "", 0, false
}
