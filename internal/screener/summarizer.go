package screener

import (
	"context"
	"log"
	"strings"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/provider"
)

// FailedSummary is stored in history when compression fails, so later runs
// still see that a report existed for the period.
const FailedSummary = "summary generation failed"

const compressorReportExcerpt = 3000

// Summarizer compresses a full report into the short form kept in history
// and fed back into later reports as context.
type Summarizer struct {
	cfg    config.LLMConfig
	llm    provider.Provider
	logger *log.Logger
}

func NewSummarizer(cfg config.LLMConfig, llm provider.Provider) *Summarizer {
	return &Summarizer{
		cfg:    cfg,
		llm:    llm,
		logger: log.New(log.Writer(), "[SUMMARY] ", log.LstdFlags),
	}
}

// Compress reduces a report to at most three sentences. Failed reports are
// not summarized; the sentinel is returned instead so history never stores a
// summary of an error placeholder.
func (s *Summarizer) Compress(ctx context.Context, report string) string {
	if IsErrorReport(report) {
		return FailedSummary
	}

	excerpt := truncateRunes(report, compressorReportExcerpt)

	var b strings.Builder
	b.WriteString("Summarize the key conclusions and market stance of the following report in at most 3 sentences. ")
	b.WriteString("Plain text only, no HTML.\n\n")
	b.WriteString(excerpt)

	model := s.cfg.Routing.Summary
	if model == "" {
		model = s.cfg.Routing.Fallback
	}

	out, err := s.llm.Generate(ctx, b.String(), model, map[string]interface{}{
		"max_tokens": 300,
	})
	if err != nil {
		s.logger.Printf("summary generation failed: %v", err)
		return FailedSummary
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return FailedSummary
	}
	return out
}
