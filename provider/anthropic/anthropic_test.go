package anthropic_provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strategic-council/screener/config"
)

func testProviderConfig(baseURL string) config.LLMProvider {
	return config.LLMProvider{
		Type:    "anthropic",
		APIKey:  "sk-test",
		BaseURL: baseURL,
		Models: map[string]config.LLMModel{
			"scout": {Name: "scout", APIName: "claude-3-5-haiku-20241022", MaxTokens: 1000, CostPer1K: 0.0008, CostPer1KOutput: 0.004},
		},
	}
}

func TestGenerateWithTokens(t *testing.T) {
	var gotBody request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "sk-test" {
			t.Error("api key header missing")
		}
		if r.Header.Get("anthropic-version") != anthropicVersion {
			t.Error("version header missing")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"content": [{"text": "hello"}], "usage": {"input_tokens": 12, "output_tokens": 3}}`)
	}))
	defer srv.Close()

	c := NewClient(testProviderConfig(srv.URL))
	out, in, outTok, err := c.GenerateWithTokens(context.Background(), "hi", "scout", map[string]interface{}{"max_tokens": 2000})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "hello" || in != 12 || outTok != 3 {
		t.Errorf("got %q, %d, %d", out, in, outTok)
	}
	if gotBody.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("api model = %q", gotBody.Model)
	}
	if gotBody.MaxTokens != 2000 {
		t.Errorf("max_tokens = %d, want option override 2000", gotBody.MaxTokens)
	}
}

func TestGenerateUnknownModel(t *testing.T) {
	c := NewClient(testProviderConfig("http://localhost:1"))
	if _, err := c.Generate(context.Background(), "hi", "nonexistent", nil); err == nil {
		t.Fatal("unknown model profile must error")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(testProviderConfig(srv.URL))
	if _, err := c.Generate(context.Background(), "hi", "scout", nil); err == nil {
		t.Fatal("non-200 status must error")
	}
}

func TestCalculateCost(t *testing.T) {
	c := NewClient(testProviderConfig(""))
	got := c.CalculateCost(1000, 1000, "scout")
	if want := 0.0008 + 0.004; got != want {
		t.Errorf("cost = %v, want %v", got, want)
	}
	if c.CalculateCost(1000, 1000, "unknown") != 0 {
		t.Error("unknown model cost must be 0")
	}
}
