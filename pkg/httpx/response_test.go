package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/budgeteer/pkg/httpx"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]any{"id": 1718150400000, "name": "Milk 2% 2L"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	for header, want := range map[string]string{
		"Content-Type":           "application/json; charset=utf-8",
		"X-Content-Type-Options": "nosniff",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	var body struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ID != 1718150400000 || body.Name != "Milk 2% 2L" {
		t.Errorf("body = %+v", body)
	}
}

func TestJSONError_Shape(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusUnprocessableEntity, "shopping list is empty")

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", w.Code)
	}
	var body httpx.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "shopping list is empty" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestPublicMessage(t *testing.T) {
	err := errors.New("dial tcp 10.0.0.7:6379: connection refused")
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusInternalServerError, "Internal Server Error"},
		{http.StatusServiceUnavailable, err.Error()},
		{http.StatusNotFound, err.Error()},
	}
	for _, tt := range tests {
		if got := httpx.PublicMessage(err, tt.status); got != tt.want {
			t.Errorf("PublicMessage(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
