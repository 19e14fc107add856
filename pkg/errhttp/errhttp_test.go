package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	assistdomain "github.com/ghuser/budgeteer/services/assist/domain"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", catalogdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrEntryNotFound", listdomain.ErrEntryNotFound, http.StatusNotFound},
		{"ErrInvalidQuery", catalogdomain.ErrInvalidQuery, http.StatusBadRequest},
		{"ErrBlankName", listdomain.ErrBlankName, http.StatusUnprocessableEntity},
		{"ErrEmptyList", listdomain.ErrEmptyList, http.StatusUnprocessableEntity},
		{"ErrBlankPrompt", assistdomain.ErrBlankPrompt, http.StatusUnprocessableEntity},
		{"ErrInvalidBudget", assistdomain.ErrInvalidBudget, http.StatusUnprocessableEntity},
		{"ErrConfirmationRequired", listdomain.ErrConfirmationRequired, http.StatusPreconditionRequired},
		{"ErrCatalogRejected", catalogdomain.ErrCatalogRejected, http.StatusBadGateway},
		{"ErrAssistUpstream", assistdomain.ErrAssistUpstream, http.StatusBadGateway},
		{"ErrAssistFailed", assistdomain.ErrAssistFailed, http.StatusBadGateway},
		{"ErrCatalogUnavailable", catalogdomain.ErrCatalogUnavailable, http.StatusServiceUnavailable},
		{"ErrAssistUnreachable", assistdomain.ErrAssistUnreachable, http.StatusServiceUnavailable},
		{"wrapped ErrItemNotFound", fmt.Errorf("detail: %w", catalogdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrBlankName", fmt.Errorf("add entry: %w", listdomain.ErrBlankName), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, listdomain.ErrEmptyList)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != listdomain.ErrEmptyList.Error() {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("save list: %w", errors.New("redis: connection pool timeout")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "Internal Server Error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}
