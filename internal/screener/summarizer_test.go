package screener

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCompressReturnsSummary(t *testing.T) {
	llm := &stubLLM{fn: func(call int, prompt string) (string, error) {
		return "  Stay defensive. Rates drive everything. Hold cash.  ", nil
	}}
	s := NewSummarizer(testLLMConfig(), llm)

	got := s.Compress(context.Background(), "<h3>CHAPTER 1</h3><p>long report</p>")
	if got != "Stay defensive. Rates drive everything. Hold cash." {
		t.Errorf("summary = %q", got)
	}
}

func TestCompressErrorReportSkipsModel(t *testing.T) {
	llm := &stubLLM{fn: func(call int, prompt string) (string, error) {
		t.Fatal("error reports must not be summarized")
		return "", nil
	}}
	s := NewSummarizer(testLLMConfig(), llm)

	if got := s.Compress(context.Background(), errorMarker+"<p>boom</p>"); got != FailedSummary {
		t.Errorf("got %q, want sentinel", got)
	}
}

func TestCompressCallFailure(t *testing.T) {
	llm := &stubLLM{fn: func(call int, prompt string) (string, error) {
		return "", errors.New("timeout")
	}}
	s := NewSummarizer(testLLMConfig(), llm)

	if got := s.Compress(context.Background(), "<p>report</p>"); got != FailedSummary {
		t.Errorf("got %q, want sentinel", got)
	}
}

func TestCompressBlankResponse(t *testing.T) {
	llm := &stubLLM{fn: func(call int, prompt string) (string, error) {
		return "   \n", nil
	}}
	s := NewSummarizer(testLLMConfig(), llm)

	if got := s.Compress(context.Background(), "<p>report</p>"); got != FailedSummary {
		t.Errorf("got %q, want sentinel", got)
	}
}

func TestCompressTruncatesReport(t *testing.T) {
	llm := &stubLLM{fn: func(call int, prompt string) (string, error) {
		return "short", nil
	}}
	s := NewSummarizer(testLLMConfig(), llm)

	s.Compress(context.Background(), strings.Repeat("~", 5000))
	if got := strings.Count(llm.prompts[0], "~"); got != 3000 {
		t.Errorf("prompt carries %d report chars, want 3000", got)
	}
}
