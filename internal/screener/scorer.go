package screener

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/models"
	"github.com/strategic-council/screener/provider"
)

// BatchSize is the number of items scored in a single tier-1 request.
const BatchSize = 20

const scoringPromptHeader = `You are a global investment strategist. Rate each news item below for investment decision importance on a 0-100 scale.

Criteria:
- Impact on the market as a whole (macro, rates, geopolitics)
- Direct impact on a specific sector or asset class
- Novelty of the information (already known vs. a new signal)
- Actionability (can it translate into a concrete investment move)

Respond ONLY with JSON in exactly this shape, no other text:
{"scores": [{"id": 0, "score": 85, "reason": "one-line reason"}, ...]}

News items:
`

// ScoreObserver receives per-batch outcomes, for accounting.
type ScoreObserver interface {
	BatchScored()
	BatchFallback()
}

// Scorer is the tier-1 bulk filter: it batches items and asks a cheap model
// profile for a per-item importance score.
type Scorer struct {
	cfg      config.LLMConfig
	llm      provider.Provider
	logger   *log.Logger
	observer ScoreObserver
}

// NewScorer creates a tier-1 scorer routed per cfg.Routing.Scoring.
func NewScorer(cfg config.LLMConfig, llm provider.Provider) *Scorer {
	return &Scorer{
		cfg:    cfg,
		llm:    llm,
		logger: log.New(log.Writer(), "[SCORER] ", log.LstdFlags),
	}
}

// SetObserver attaches an outcome observer. Nil disables accounting.
func (s *Scorer) SetObserver(o ScoreObserver) { s.observer = o }

type scoredResponse struct {
	Scores []struct {
		ID     int    `json:"id"`
		Score  int    `json:"score"`
		Reason string `json:"reason"`
	} `json:"scores"`
}

// Score partitions items into fixed-size batches and scores each batch with
// one request. Batches fail independently: on a call or parse failure every
// item of that batch is emitted with the fallback score. On a successful
// parse, only items the response actually names are emitted — items the model
// omits are silently dropped. That asymmetry is long-standing behavior that
// downstream consumers rely on; do not "fix" it here.
func (s *Scorer) Score(ctx context.Context, items []models.Item) []models.ScoredItem {
	if len(items) == 0 {
		return nil
	}

	model := s.cfg.Routing.Scoring
	if model == "" {
		model = s.cfg.Routing.Fallback
	}

	var scored []models.ScoredItem
	for start := 0; start < len(items); start += BatchSize {
		end := start + BatchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]
		scored = append(scored, s.scoreBatch(ctx, batch, model, start)...)
	}
	return scored
}

func (s *Scorer) scoreBatch(ctx context.Context, batch []models.Item, model string, offset int) []models.ScoredItem {
	prompt := buildScoringPrompt(batch)

	out, err := s.llm.Generate(ctx, prompt, model, map[string]interface{}{"max_tokens": 2000})
	if err != nil {
		s.logger.Printf("batch %d: call failed, falling back: %v", offset, err)
		return s.fallback(batch)
	}

	raw, ok := extractFirstJSON(out)
	if !ok {
		s.logger.Printf("batch %d: no JSON in response, falling back", offset)
		return s.fallback(batch)
	}
	var resp scoredResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		s.logger.Printf("batch %d: parse failed, falling back: %v", offset, err)
		return s.fallback(batch)
	}

	if s.observer != nil {
		s.observer.BatchScored()
	}

	var scored []models.ScoredItem
	for _, sc := range resp.Scores {
		if sc.ID < 0 || sc.ID >= len(batch) {
			continue
		}
		scored = append(scored, models.ScoredItem{
			Item:   batch[sc.ID],
			Score:  sc.Score,
			Reason: sc.Reason,
		})
	}
	return scored
}

func buildScoringPrompt(batch []models.Item) string {
	var b strings.Builder
	b.WriteString(scoringPromptHeader)
	for i, item := range batch {
		fmt.Fprintf(&b, "[%d] %s | %s | %s\n", i, item.Source, item.Title, truncateRunes(item.Content, 500))
	}
	return b.String()
}

// truncateRunes caps s at limit characters. Cutting at a byte index could
// split a multi-byte rune; excerpts are counted in characters throughout.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func (s *Scorer) fallback(batch []models.Item) []models.ScoredItem {
	if s.observer != nil {
		s.observer.BatchFallback()
	}
	return fallbackBatch(batch)
}

func fallbackBatch(batch []models.Item) []models.ScoredItem {
	scored := make([]models.ScoredItem, len(batch))
	for i, item := range batch {
		scored[i] = models.ScoredItem{Item: item, Score: models.FallbackScore}
	}
	return scored
}

// extractFirstJSON finds the first balanced brace-delimited span in s. The
// scoring collaborator may wrap its JSON in prose or code fences, so callers
// apply the fallback uniformly when ok is false.
func extractFirstJSON(s string) (string, bool) {
	start := -1
	depth := 0
	for i, ch := range s {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
