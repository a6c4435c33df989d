package screener

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/internal/delivery"
	"github.com/strategic-council/screener/internal/feed"
	"github.com/strategic-council/screener/internal/history"
	"github.com/strategic-council/screener/internal/telemetry"
	"github.com/strategic-council/screener/models"
	"github.com/strategic-council/screener/provider"
)

// historyDateLayout is the label stored with every history entry.
const historyDateLayout = "2006-01-02 15:04 UTC"

// Pipeline runs one full screening cycle: collect, score, select, then for
// every cadence due today generate, deliver and summarize a report, and
// persist the updated history once at the end.
type Pipeline struct {
	cfg        *config.Config
	collector  feed.Collector
	enricher   *feed.Enricher
	scorer     *Scorer
	analyzer   *Analyzer
	summarizer *Summarizer
	store      history.Store
	deliverer  delivery.Deliverer
	metrics    *telemetry.Metrics
	logger     *log.Logger

	now func() time.Time
}

func NewPipeline(cfg *config.Config, collector feed.Collector, llm provider.Provider, store history.Store, deliverer delivery.Deliverer, metrics *telemetry.Metrics) *Pipeline {
	p := &Pipeline{
		cfg:        cfg,
		collector:  collector,
		scorer:     NewScorer(cfg.LLM, llm),
		analyzer:   NewAnalyzer(cfg.LLM, llm),
		summarizer: NewSummarizer(cfg.LLM, llm),
		store:      store,
		deliverer:  deliverer,
		metrics:    metrics,
		logger:     log.New(log.Writer(), "[PIPELINE] ", log.LstdFlags),
		now:        time.Now,
	}
	if cfg.Sources.Readability {
		p.enricher = feed.NewEnricher(cfg.Sources.FetchTimeout)
	}
	if metrics != nil {
		p.scorer.SetObserver(metricsObserver{metrics})
	}
	return p
}

// SetNow overrides the pipeline clock.
func (p *Pipeline) SetNow(now func() time.Time) { p.now = now }

// Run executes one cycle. It fails fast when no items were collected or none
// survived selection; after that point per-cadence failures degrade to error
// reports and sentinel summaries instead of aborting the run, so one bad
// cadence cannot lose the others' history.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.New().String()[:8]
	if p.metrics != nil {
		defer p.metrics.Push()
	}

	items, err := p.collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("run %s: no items collected, aborting", runID)
	}
	if p.metrics != nil {
		p.metrics.ItemsIngested.Add(float64(len(items)))
	}
	p.logger.Printf("run %s: collected %d items", runID, len(items))

	scored := p.scorer.Score(ctx, items)
	selected := SelectTop(scored)
	if len(selected) == 0 {
		return fmt.Errorf("run %s: no items selected, aborting", runID)
	}
	p.logger.Printf("run %s: selected %d of %d scored items", runID, len(selected), len(scored))

	p.enrich(ctx, selected)

	now := p.now()
	due := DueCadences(now)
	p.logger.Printf("run %s: cadences due: %v", runID, due)

	snap, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	for _, cadence := range due {
		p.runCadence(ctx, cadence, selected, snap, now)
	}

	if err := p.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	p.logger.Printf("run %s: done, history saved", runID)
	return nil
}

// runCadence generates, delivers and records one cadence report. The
// in-memory snapshot is appended to as cadences complete, so a coarser
// cadence later in the same run sees the finer cadence's fresh summary.
// A failed analysis skips the cadence entirely: no delivery, no history
// entry, and the other cadences proceed.
func (p *Pipeline) runCadence(ctx context.Context, cadence models.Cadence, selected []models.ScoredItem, snap *history.Snapshot, now time.Time) {
	historyContext := BuildContext(cadence, snap)
	report := p.analyzer.Analyze(ctx, cadence, selected, historyContext, now)

	if IsErrorReport(report) {
		p.logger.Printf("%s report failed, skipping delivery and history", cadence)
		if p.metrics != nil {
			p.metrics.ReportsFailed.WithLabelValues(string(cadence)).Inc()
		}
		return
	}
	if p.metrics != nil {
		p.metrics.ReportsGenerated.WithLabelValues(string(cadence)).Inc()
	}

	if p.deliverer != nil {
		if err := p.deliverer.Deliver(ctx, cadence, report, now); err != nil {
			p.logger.Printf("%s delivery failed: %v", cadence, err)
			if p.metrics != nil {
				p.metrics.DeliveryFailures.Inc()
			}
		} else if p.metrics != nil {
			p.metrics.Deliveries.Inc()
		}
	}

	summary := p.summarizer.Compress(ctx, report)
	snap.Append(cadence, models.HistoryEntry{
		Date:    now.UTC().Format(historyDateLayout),
		Summary: summary,
	})
}

// enrich replaces item content with full-page extractions where readability
// succeeds. Best effort: failures keep the feed excerpt.
func (p *Pipeline) enrich(ctx context.Context, selected []models.ScoredItem) {
	if p.enricher == nil {
		return
	}
	for i := range selected {
		if selected[i].Link == "" {
			continue
		}
		text, err := p.enricher.Extract(ctx, selected[i].Link)
		if err != nil || text == "" {
			continue
		}
		selected[i].Content = text
	}
}

type metricsObserver struct{ m *telemetry.Metrics }

func (o metricsObserver) BatchScored() { o.m.BatchesScored.Inc() }

func (o metricsObserver) BatchFallback() {
	o.m.BatchesScored.Inc()
	o.m.BatchFallbacks.Inc()
}
