package screener

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/models"
	"github.com/strategic-council/screener/provider"
)

// errorMarker is embedded in reports that could not be generated. Downstream
// stages detect failed reports by substring, so the marker must stay stable.
const errorMarker = "<h3>Analysis Error</h3>"

const analyzerItemExcerpt = 1500

// Analyzer produces the full cadence report for a set of selected items. It
// runs on the analysis route, which is expected to point at a stronger model
// than the scoring route.
type Analyzer struct {
	cfg    config.LLMConfig
	llm    provider.Provider
	logger *log.Logger
}

func NewAnalyzer(cfg config.LLMConfig, llm provider.Provider) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		llm:    llm,
		logger: log.New(log.Writer(), "[ANALYZER] ", log.LstdFlags),
	}
}

// Analyze renders the cadence template, the prior-period context block and the
// selected items into a single prompt and returns the model's HTML report.
// It never returns an error: a failed call yields an error report carrying
// errorMarker so the pipeline can keep going and the failure still reaches
// the recipient.
func (a *Analyzer) Analyze(ctx context.Context, cadence models.Cadence, items []models.ScoredItem, historyContext string, now time.Time) string {
	prompt := a.buildPrompt(cadence, items, historyContext, now)

	model := a.cfg.Routing.Analysis
	if model == "" {
		model = a.cfg.Routing.Fallback
	}

	report, err := a.llm.Generate(ctx, prompt, model, map[string]interface{}{
		"max_tokens": 8000,
	})
	if err != nil {
		a.logger.Printf("%s report generation failed: %v", cadence, err)
		return fmt.Sprintf("%s<p>Failed to generate the %s report: %v</p>", errorMarker, cadence.Label(), err)
	}
	return report
}

func (a *Analyzer) buildPrompt(cadence models.Cadence, items []models.ScoredItem, historyContext string, now time.Time) string {
	var b strings.Builder
	b.WriteString(reportTemplate(cadence))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("**Report date:** %s\n\n", now.UTC().Format("2006-01-02")))

	if historyContext != "" {
		b.WriteString("## Prior-period context\n\n")
		b.WriteString(historyContext)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("## Source material: %d selected items\n\n", len(items)))
	for i, it := range items {
		excerpt := truncateRunes(it.Content, analyzerItemExcerpt)
		b.WriteString(fmt.Sprintf("### [%d] %s (score %d, %s)\n", i+1, it.Title, it.Score, it.Source))
		if it.PublishedLabel != "" {
			b.WriteString(fmt.Sprintf("Published: %s\n", it.PublishedLabel))
		}
		if it.Link != "" {
			b.WriteString(fmt.Sprintf("Link: %s\n", it.Link))
		}
		b.WriteString(excerpt)
		b.WriteString("\n\n")
	}

	b.WriteString("Write the report now, in HTML only, following the structure above.")
	return b.String()
}

// IsErrorReport reports whether a report body is a generation-failure
// placeholder rather than real analysis.
func IsErrorReport(report string) bool {
	return strings.Contains(report, errorMarker)
}
