package history

import (
	"fmt"

	"github.com/blevesearch/bleve"
	"github.com/strategic-council/screener/models"
)

// SearchHit is one history entry matched by a full-text query.
type SearchHit struct {
	Cadence models.Cadence
	Entry   models.HistoryEntry
	Score   float64
}

type indexedEntry struct {
	Cadence string `json:"cadence"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// Search builds an in-memory full-text index over every summary in the
// snapshot and runs a match query against it. The index is transient; history
// volumes are small enough to rebuild per invocation.
func Search(snap *Snapshot, query string, limit int) ([]SearchHit, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}
	defer index.Close()

	meta := make(map[string]SearchHit)
	for _, c := range models.AllCadences() {
		for i, e := range snap.Entries[c] {
			id := fmt.Sprintf("%s/%d", c, i)
			meta[id] = SearchHit{Cadence: c, Entry: e}
			if err := index.Index(id, indexedEntry{Cadence: string(c), Date: e.Date, Summary: e.Summary}); err != nil {
				return nil, fmt.Errorf("indexing entry: %w", err)
			}
		}
	}

	if limit <= 0 {
		limit = 10
	}
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	res, err := index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}

	var hits []SearchHit
	for _, h := range res.Hits {
		hit, ok := meta[h.ID]
		if !ok {
			continue
		}
		hit.Score = h.Score
		hits = append(hits, hit)
	}
	return hits, nil
}
