package telemetry

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/strategic-council/screener/config"
)

// Metrics holds the per-run counters. The screener is a run-and-exit batch
// job, so metrics are pushed to a Pushgateway at the end of a run instead of
// being scraped.
type Metrics struct {
	cfg      config.TelemetryConfig
	registry *prometheus.Registry
	logger   *log.Logger

	ItemsIngested    prometheus.Counter
	BatchesScored    prometheus.Counter
	BatchFallbacks   prometheus.Counter
	ReportsGenerated *prometheus.CounterVec
	ReportsFailed    *prometheus.CounterVec
	Deliveries       prometheus.Counter
	DeliveryFailures prometheus.Counter
}

func New(cfg config.TelemetryConfig) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		cfg:      cfg,
		registry: reg,
		logger:   log.New(log.Writer(), "[METRICS] ", log.LstdFlags),
		ItemsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_items_ingested_total",
			Help: "News items collected from all feeds this run",
		}),
		BatchesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_batches_scored_total",
			Help: "Scoring batches submitted to the model",
		}),
		BatchFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_batch_fallbacks_total",
			Help: "Scoring batches that fell back to the neutral score",
		}),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_reports_generated_total",
			Help: "Reports generated, by cadence",
		}, []string{"cadence"}),
		ReportsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screener_reports_failed_total",
			Help: "Reports that ended up as error placeholders, by cadence",
		}, []string{"cadence"}),
		Deliveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_deliveries_total",
			Help: "Reports delivered by email",
		}),
		DeliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screener_delivery_failures_total",
			Help: "Email deliveries that failed",
		}),
	}
	reg.MustRegister(
		m.ItemsIngested, m.BatchesScored, m.BatchFallbacks,
		m.ReportsGenerated, m.ReportsFailed,
		m.Deliveries, m.DeliveryFailures,
	)
	return m
}

// Push sends the run's counters to the configured Pushgateway, or logs them
// when no gateway is set. Failures are logged, never fatal: telemetry must
// not fail a run that produced reports.
func (m *Metrics) Push() {
	if !m.cfg.Enabled {
		return
	}
	if m.cfg.PushGateway == "" {
		m.logCounters()
		return
	}
	job := m.cfg.JobName
	if job == "" {
		job = "screener"
	}
	if err := push.New(m.cfg.PushGateway, job).Gatherer(m.registry).Push(); err != nil {
		m.logger.Printf("push to %s failed: %v", m.cfg.PushGateway, err)
	}
}

func (m *Metrics) logCounters() {
	mfs, err := m.registry.Gather()
	if err != nil {
		m.logger.Printf("gather failed: %v", err)
		return
	}
	for _, mf := range mfs {
		var total float64
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		m.logger.Printf("%s = %g", mf.GetName(), total)
	}
}
