package screener

import (
	"fmt"
	"strings"

	"github.com/strategic-council/screener/internal/history"
	"github.com/strategic-council/screener/models"
)

// BuildContext renders the accumulated context block for a cadence: the most
// recent summaries of its source cadence as a bulleted "date: summary" list.
// Daily reports and cadences with no prior source history yield empty text.
// Because the in-memory snapshot is mutated as cadences complete within one
// run, a weekly report generated after a daily one sees that daily's entry.
func BuildContext(c models.Cadence, snap *history.Snapshot) string {
	source, count, ok := ContextSource(c)
	if !ok {
		return ""
	}

	entries := snap.Last(source, count)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Last %d %s report summaries]\n", len(entries), source)
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s\n", e.Date, e.Summary)
	}
	return b.String()
}
