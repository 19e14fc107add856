package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/budgeteer"

// Metrics holds the application-level instruments. Instruments come from the
// global MeterProvider, so they are no-ops until Setup has run.
type Metrics struct {
	catalogLoads   metric.Int64Counter
	catalogRecords metric.Int64Gauge
	searches       metric.Int64Counter
	listMutations  metric.Int64Counter
	assistRequests metric.Int64Counter
}

// NewMetrics registers every instrument on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	var (
		m   Metrics
		err error
	)
	if m.catalogLoads, err = meter.Int64Counter("budgeteer.catalog.loads",
		metric.WithDescription("Catalog loads by source and outcome")); err != nil {
		return nil, fmt.Errorf("catalog loads counter: %w", err)
	}
	if m.catalogRecords, err = meter.Int64Gauge("budgeteer.catalog.records",
		metric.WithDescription("Price records in the active catalog snapshot")); err != nil {
		return nil, fmt.Errorf("catalog records gauge: %w", err)
	}
	if m.searches, err = meter.Int64Counter("budgeteer.search.requests",
		metric.WithDescription("Catalog searches by resulting view state")); err != nil {
		return nil, fmt.Errorf("search counter: %w", err)
	}
	if m.listMutations, err = meter.Int64Counter("budgeteer.shopping_list.mutations",
		metric.WithDescription("Shopping list mutations by operation")); err != nil {
		return nil, fmt.Errorf("list mutation counter: %w", err)
	}
	if m.assistRequests, err = meter.Int64Counter("budgeteer.assist.requests",
		metric.WithDescription("AI assist requests by operation and outcome")); err != nil {
		return nil, fmt.Errorf("assist counter: %w", err)
	}
	return &m, nil
}

// MustMetrics is NewMetrics for process startup and tests.
func MustMetrics() *Metrics {
	m, err := NewMetrics()
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) CatalogLoaded(ctx context.Context, source string, records int, ok bool) {
	if m == nil {
		return
	}
	m.catalogLoads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source), attribute.Bool("ok", ok)))
	if ok {
		m.catalogRecords.Record(ctx, int64(records))
	}
}

func (m *Metrics) Searched(ctx context.Context, state string) {
	if m == nil {
		return
	}
	m.searches.Add(ctx, 1, metric.WithAttributes(attribute.String("state", state)))
}

func (m *Metrics) ListMutated(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.listMutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

func (m *Metrics) AssistRequested(ctx context.Context, op, outcome string) {
	if m == nil {
		return
	}
	m.assistRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op), attribute.String("outcome", outcome)))
}
