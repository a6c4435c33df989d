package telemetry

import (
	"testing"

	"github.com/strategic-council/screener/config"
)

func TestCountersRegisterAndIncrement(t *testing.T) {
	m := New(config.TelemetryConfig{Enabled: true})

	m.ItemsIngested.Add(45)
	m.BatchesScored.Inc()
	m.BatchFallbacks.Inc()
	m.ReportsGenerated.WithLabelValues("daily").Inc()
	m.ReportsFailed.WithLabelValues("weekly").Inc()
	m.Deliveries.Inc()
	m.DeliveryFailures.Inc()

	mfs, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 7 {
		t.Errorf("registered %d metric families, want 7", len(mfs))
	}
}

func TestPushDisabledIsNoOp(t *testing.T) {
	m := New(config.TelemetryConfig{Enabled: false, PushGateway: "http://localhost:1"})
	// Must not attempt the network.
	m.Push()
}

func TestPushWithoutGatewayLogsOnly(t *testing.T) {
	m := New(config.TelemetryConfig{Enabled: true})
	m.ItemsIngested.Inc()
	m.Push()
}
