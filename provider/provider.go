package provider

import (
	"context"
	"fmt"
	"sort"

	"github.com/strategic-council/screener/config"
	anthropic_provider "github.com/strategic-council/screener/provider/anthropic"
	openai_provider "github.com/strategic-council/screener/provider/openai"
)

// Provider is the interface every LLM implementation must satisfy. Models are
// addressed by their configured profile key, not their API name, so callers
// route through config.LLMRoutingConfig without knowing provider details.
type Provider interface {
	Generate(ctx context.Context, prompt string, model string, options map[string]interface{}) (string, error)
	GenerateWithTokens(ctx context.Context, prompt string, model string, options map[string]interface{}) (string, int64, int64, error)
	CalculateCost(inputTokens, outputTokens int64, model string) float64
}

// NewProvider creates an LLM provider from configuration. Providers are
// considered in name order so the choice is deterministic; the first one with
// a supported type wins. Multi-provider routing is not needed here.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	if len(cfg.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured")
	}

	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := cfg.Providers[name]
		switch p.Type {
		case "anthropic":
			return anthropic_provider.NewClient(p), nil
		case "openai":
			return openai_provider.NewClient(p), nil
		}
	}
	return nil, fmt.Errorf("no provider with a supported type (anthropic, openai) configured")
}
