package feed

import (
	"context"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/models"
)

const maxContentChars = 3000

// Collector supplies the pipeline with news items. A source that fails simply
// contributes zero items; only a fully empty collection is treated as fatal,
// and that decision belongs to the caller.
type Collector interface {
	Collect(ctx context.Context) ([]models.Item, error)
}

// RSSCollector fetches and sanitizes items from configured RSS feeds.
type RSSCollector struct {
	cfg    config.SourcesConfig
	parser *gofeed.Parser
	logger *log.Logger
}

// NewRSSCollector creates a collector over the configured feed list.
func NewRSSCollector(cfg config.SourcesConfig) *RSSCollector {
	return &RSSCollector{
		cfg:    cfg,
		parser: gofeed.NewParser(),
		logger: log.New(log.Writer(), "[FEED] ", log.LstdFlags),
	}
}

// Collect pulls every configured feed in order. Feed failures are logged and
// skipped; the returned slice holds whatever was collected.
func (c *RSSCollector) Collect(ctx context.Context) ([]models.Item, error) {
	var all []models.Item
	for _, src := range c.cfg.Feeds {
		items, err := c.collectOne(ctx, src)
		if err != nil {
			c.logger.Printf("source %s failed: %v", src.Name, err)
			continue
		}
		c.logger.Printf("source %s: %d items", src.Name, len(items))
		all = append(all, items...)
	}
	c.logger.Printf("collected %d items total", len(all))
	return all, nil
}

func (c *RSSCollector) collectOne(ctx context.Context, src config.FeedSource) ([]models.Item, error) {
	fctx, cancel := context.WithTimeout(ctx, c.cfg.FetchTimeout)
	defer cancel()

	parsed, err := c.parser.ParseURLWithContext(src.URL, fctx)
	if err != nil {
		return nil, err
	}

	limit := c.cfg.PerFeedLimit
	var items []models.Item
	for i, entry := range parsed.Items {
		if i >= limit {
			break
		}
		title := CleanText(entry.Title)
		if title == "" {
			continue
		}
		content := entry.Content
		if content == "" {
			content = entry.Description
		}
		content = capContent(CleanText(content))
		items = append(items, models.Item{
			Source:         src.Name,
			Title:          title,
			Content:        content,
			PublishedLabel: CleanText(entry.Published),
			Link:           CleanText(entry.Link),
		})
	}
	return items, nil
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy

	whitespaceRE = regexp.MustCompile(`\s+`)
)

func strictHTMLPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// capContent truncates s to the content cap on a rune boundary. Feed text is
// not ASCII-only, so a byte slice could split a character.
func capContent(s string) string {
	if len(s) <= maxContentChars {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxContentChars {
		return s
	}
	return string(runes[:maxContentChars])
}

// CleanText strips every HTML tag from s, removes non-breaking and zero-width
// spaces, and collapses runs of whitespace to a single space.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strictHTMLPolicy().Sanitize(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "​", "")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
