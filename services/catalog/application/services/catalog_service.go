package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	"github.com/ghuser/budgeteer/pkg/upstream"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
	"github.com/ghuser/budgeteer/services/catalog/domain/repositories"
)

// NamedSource pairs a CatalogSource with the name reported in logs and
// snapshot metadata.
type NamedSource struct {
	Name   string
	Source repositories.CatalogSource
}

// CatalogService owns the in-memory catalog snapshot shared by every reader.
// Records are replaced wholesale and never mutated in place, so callers may
// keep the slice returned by Records.
type CatalogService struct {
	mu       sync.RWMutex
	records  []models.PriceRecord
	source   string
	loadedAt time.Time

	primary   NamedSource
	fallback  NamedSource
	snapshots repositories.SnapshotStore // nil disables snapshot reads/writes
	metrics   *telemetry.Metrics
	log       logger.Logger
	now       func() time.Time
}

// NewCatalogService returns an empty CatalogService. Call Load before serving.
func NewCatalogService(primary, fallback NamedSource, snapshots repositories.SnapshotStore, metrics *telemetry.Metrics, log logger.Logger) *CatalogService {
	return &CatalogService{
		records:   []models.PriceRecord{},
		primary:   primary,
		fallback:  fallback,
		snapshots: snapshots,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// Load fills the catalog: stored snapshot first, then the primary source,
// then the fallback. Failures of the first two are logged, never returned;
// only a failing fallback is an error. The primary source gets a single
// attempt so a dead backend falls back at once.
func (s *CatalogService) Load(ctx context.Context) (source string, err error) {
	ctx, end := telemetry.StartSpan(ctx, "catalog.load")
	defer func() { end(err) }()

	if s.snapshots != nil {
		records, err := s.snapshots.LoadSnapshot(ctx)
		switch {
		case err == nil && len(records) > 0:
			s.Replace("snapshot", records)
			s.metrics.CatalogLoaded(ctx, "snapshot", len(records), true)
			return "snapshot", nil
		case err != nil && !errors.Is(err, catalogdomain.ErrSnapshotMissing):
			s.log.WarnContext(ctx, "catalog snapshot unreadable", "error", err)
		}
	}

	if s.primary.Source != nil {
		records, err := s.primary.Source.Items(upstream.WithoutRetry(ctx))
		if err == nil && len(records) > 0 {
			s.Replace(s.primary.Name, records)
			s.metrics.CatalogLoaded(ctx, s.primary.Name, len(records), true)
			return s.primary.Name, nil
		}
		s.metrics.CatalogLoaded(ctx, s.primary.Name, 0, false)
		s.log.WarnContext(ctx, "catalog source failed, using fallback",
			"source", s.primary.Name, "fallback", s.fallback.Name, "error", err)
	}

	records, err := s.fallback.Source.Items(ctx)
	if err != nil {
		return "", fmt.Errorf("load fallback catalog %s: %w", s.fallback.Name, err)
	}
	s.Replace(s.fallback.Name, records)
	s.metrics.CatalogLoaded(ctx, s.fallback.Name, len(records), true)
	return s.fallback.Name, nil
}

// Refresh fetches the primary source, stores it as the snapshot and swaps it
// in. Unlike Load it retries transient upstream failures and reports the
// ones that remain.
func (s *CatalogService) Refresh(ctx context.Context) (n int, err error) {
	ctx, end := telemetry.StartSpan(ctx, "catalog.refresh", attribute.String("source", s.primary.Name))
	defer func() { end(err) }()

	records, err := s.primary.Source.Items(ctx)
	if err != nil {
		s.metrics.CatalogLoaded(ctx, s.primary.Name, 0, false)
		return 0, fmt.Errorf("refresh catalog: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("refresh catalog: %w: no records", catalogdomain.ErrCatalogUnavailable)
	}
	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, s.primary.Name, records); err != nil {
			return 0, err
		}
	}
	s.Replace(s.primary.Name, records)
	s.metrics.CatalogLoaded(ctx, s.primary.Name, len(records), true)
	return len(records), nil
}

// Reload re-reads the stored snapshot, keeping the current catalog when none
// exists.
func (s *CatalogService) Reload(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	records, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	s.Replace("snapshot", records)
	return nil
}

// Replace swaps in a new catalog.
func (s *CatalogService) Replace(source string, records []models.PriceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.source = source
	s.loadedAt = s.now()
	s.log.Info("catalog replaced", "source", source, "records", len(records))
}

// Records returns the current catalog. The slice must not be modified.
func (s *CatalogService) Records() []models.PriceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Source reports where the current catalog came from and when.
func (s *CatalogService) Source() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source, s.loadedAt
}

// Today is the reference date for latest-price resolution.
func (s *CatalogService) Today() models.Date {
	return models.DateOf(s.now())
}
