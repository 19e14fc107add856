package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/budgeteer/pkg/validator"
)

type entryReq struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
}

type planReq struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
	Budget string `json:"budget" validate:"omitempty,money"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		wantErr map[string]string
	}{
		{"valid entry", &entryReq{Name: "Milk 2% 2L"}, nil},
		{"missing name", &entryReq{}, map[string]string{"name": "This field is required"}},
		{"blank name", &entryReq{Name: "   "}, map[string]string{"name": "Must not be blank"}},
		{"too long", &entryReq{Name: strings.Repeat("x", 201)}, map[string]string{"name": "Maximum length is 200"}},
		{"plan without budget", &planReq{Prompt: "party snacks"}, nil},
		{"plan with budget", &planReq{Prompt: "party snacks", Budget: "25.00"}, nil},
		{"negative budget", &planReq{Prompt: "party", Budget: "-1"}, map[string]string{"budget": "Must be a non-negative amount such as 25.00"}},
		{"non-numeric budget", &planReq{Prompt: "party", Budget: "lots"}, map[string]string{"budget": "Must be a non-negative amount such as 25.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(tt.in)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			got := pkgvalidator.FormatValidationErrors(err)
			for field, msg := range tt.wantErr {
				if got[field] != msg {
					t.Errorf("%s: got %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Bread White Loaf"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[entryReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Bread White Loaf" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[entryReq](w, r); ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_fieldErrors(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"prompt":" ","budget":"abc"}`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[planReq](w, r); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Errorf("unexpected error %q", body.Error)
	}
	if _, ok := body.Fields["prompt"]; !ok {
		t.Error("expected prompt field error")
	}
	if _, ok := body.Fields["budget"]; !ok {
		t.Error("expected budget field error")
	}
}

type compareReq struct {
	Names []string `json:"names" validate:"omitempty,max=3,dive,notblank"`
}

type saveReq struct {
	Items []string `json:"items" validate:"required,min=1"`
}

func TestFormatValidationErrors_ListPaths(t *testing.T) {
	err := pkgvalidator.Validate(&compareReq{Names: []string{"Milk", " ", "Bread"}})
	got := pkgvalidator.FormatValidationErrors(err)
	if got["names[1]"] != "Must not be blank" {
		t.Errorf("names[1]: got %v", got)
	}

	err = pkgvalidator.Validate(&compareReq{Names: []string{"a", "b", "c", "d"}})
	if msg := pkgvalidator.FormatValidationErrors(err)["names"]; msg != "Must have at most 3 items" {
		t.Errorf("names: got %q", msg)
	}

	err = pkgvalidator.Validate(&saveReq{Items: []string{}})
	if msg := pkgvalidator.FormatValidationErrors(err)["items"]; msg != "Must have at least 1 items" {
		t.Errorf("items: got %q", msg)
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 64) + `"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	if _, ok := pkgvalidator.ValidateRequest[entryReq](w, r); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
