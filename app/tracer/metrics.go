package tracer

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	RegisterRequestsTotal metric.Int64Counter
	LoginRequestsTotal    metric.Int64Counter
	ContactLeadsTotal     metric.Int64Counter
	AIGenerationsTotal    metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Metrics returns the global instruments, creating them on first use from
// the globally configured MeterProvider.
func Metrics() *AppMetrics {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("EllaveraAPI")
		var err error
		m := &AppMetrics{}

		m.RegisterRequestsTotal, err = meter.Int64Counter(
			"register_requests_total",
			metric.WithDescription("Total number of register requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create register_requests_total: %v", err)
		}

		m.LoginRequestsTotal, err = meter.Int64Counter(
			"login_requests_total",
			metric.WithDescription("Total number of login requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create login_requests_total: %v", err)
		}

		m.ContactLeadsTotal, err = meter.Int64Counter(
			"contact_leads_total",
			metric.WithDescription("Total number of captured contact leads"),
			metric.WithUnit("{lead}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create contact_leads_total: %v", err)
		}

		m.AIGenerationsTotal, err = meter.Int64Counter(
			"ai_generations_total",
			metric.WithDescription("Total number of AI generation calls"),
			metric.WithUnit("{call}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create ai_generations_total: %v", err)
		}

		appMetrics = m
	})
	return appMetrics
}
