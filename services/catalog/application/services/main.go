package services

import (
	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/services/catalog/domain/repositories"
	"github.com/ghuser/budgeteer/services/catalog/infrastructure/backend"
	"github.com/ghuser/budgeteer/services/catalog/infrastructure/csvfile"
	"github.com/ghuser/budgeteer/services/catalog/infrastructure/persistence/redis"
	"github.com/ghuser/budgeteer/services/catalog/infrastructure/synthetic"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
	Search  *SearchService
	Detail  *DetailService
}

// New wires all catalog application services with infrastructure from the Application container.
// The catalog starts empty; call Catalog.Load before serving.
func New(a *app.Application) *Services {
	fallback := NamedSource{Name: synthetic.SourceName, Source: synthetic.NewRandom()}

	primary := fallback
	switch a.Config.CatalogSource {
	case config.CatalogSourceBackend:
		primary = NamedSource{Name: backend.SourceName, Source: backend.NewSource(a.Upstream, a.Logger)}
	case config.CatalogSourceCSV:
		primary = NamedSource{Name: csvfile.SourceName, Source: csvfile.NewSource(a.Config.CatalogCSVPath, a.Logger)}
	}

	var snapshots repositories.SnapshotStore
	if a.Redis != nil {
		snapshots = redis.NewSnapshotStore(a.Redis)
	}

	catalog := NewCatalogService(primary, fallback, snapshots, a.Metrics, a.Logger)
	return &Services{
		Catalog: catalog,
		Search:  NewSearchService(catalog, a.Metrics),
		Detail:  NewDetailService(catalog),
	}
}
