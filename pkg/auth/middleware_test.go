package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/logger"
)

// newTestStore returns the cookie fallback store, which needs no Redis.
func newTestStore() sessions.Store {
	return NewCookieSessionStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		false,
	)
}

// newTestLogger creates a logger that discards output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// capture runs RequireShopper over r and returns the recorder and the shopper
// ID seen by the next handler.
func capture(t *testing.T, store sessions.Store, r *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ShopperIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	w := httptest.NewRecorder()
	RequireShopper(store, newTestLogger())(next).ServeHTTP(w, r)
	return w, seen
}

func TestRequireShopper_IssuesIDOnFirstVisit(t *testing.T) {
	store := newTestStore()

	w, id := capture(t, store, httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID shopper id, got %q", id)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected a session cookie to be set")
	}
}

func TestRequireShopper_ReusesSessionID(t *testing.T) {
	store := newTestStore()

	w1, first := capture(t, store, httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil))

	r := httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}
	w2, second := capture(t, store, r)

	if second != first {
		t.Fatalf("expected the same shopper id, got %q then %q", first, second)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Fatal("existing session must not be re-saved")
	}
}

func TestRequireShopper_HeaderOverride(t *testing.T) {
	want := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil)
	r.Header.Set(ShopperHeader, want)

	w, got := capture(t, newTestStore(), r)
	if w.Code != http.StatusOK || got != want {
		t.Fatalf("expected 200 with %q, got %d with %q", want, w.Code, got)
	}
}

func TestRequireShopper_InvalidHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil)
	r.Header.Set(ShopperHeader, "not-a-uuid")

	w, got := capture(t, newTestStore(), r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got != "" {
		t.Fatal("next handler should not be called")
	}
}

func TestRequireShopper_TamperedCookieStartsOver(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/shopping-list", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "garbage"})

	w, id := capture(t, newTestStore(), r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a fresh UUID, got %q", id)
	}
}
