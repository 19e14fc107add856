// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/budgeteer/pkg/httpx"
	assistdomain "github.com/ghuser/budgeteer/services/assist/domain"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors are a 500 with a generic body.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.PublicMessage(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, listdomain.ErrEntryNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrInvalidQuery):
		return http.StatusBadRequest // 400
	case errors.Is(err, listdomain.ErrBlankName),
		errors.Is(err, listdomain.ErrEmptyList),
		errors.Is(err, assistdomain.ErrBlankPrompt),
		errors.Is(err, assistdomain.ErrInvalidBudget):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, listdomain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired // 428
	case errors.Is(err, catalogdomain.ErrCatalogRejected),
		errors.Is(err, assistdomain.ErrAssistUpstream),
		errors.Is(err, assistdomain.ErrAssistFailed):
		return http.StatusBadGateway // 502
	case errors.Is(err, catalogdomain.ErrCatalogUnavailable),
		errors.Is(err, catalogdomain.ErrSnapshotMissing),
		errors.Is(err, assistdomain.ErrAssistUnreachable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
