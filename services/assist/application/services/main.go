package services

import (
	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/services/assist/domain/repositories"
	"github.com/ghuser/budgeteer/services/assist/infrastructure/llm"
	"github.com/ghuser/budgeteer/services/assist/infrastructure/mock"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Assist *AssistService
}

// New wires the assist services. ASSIST_MODE=mock, or a process without an
// upstream client, answers offline from catalog.
func New(a *app.Application, catalog CatalogReader, lists ListAdder) *Services {
	var (
		assistant repositories.Assistant
		source    = config.AssistMock
	)
	if a.Config.AssistMode == config.AssistBackend && a.Upstream != nil {
		assistant, source = llm.NewClient(a.Upstream, a.Logger), config.AssistBackend
	} else {
		assistant = mock.NewAssistant(catalog)
	}
	return &Services{
		Assist: NewAssistService(assistant, source, catalog, lists, a.Metrics, a.Logger),
	}
}
