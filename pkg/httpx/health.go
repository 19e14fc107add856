package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// HealthTimeout bounds all probes of one /health request together.
const HealthTimeout = 2 * time.Second

// Probe results reported per dependency.
const (
	HealthOK          = "ok"
	HealthDisabled    = "disabled"
	HealthUnreachable = "unreachable"
)

// HealthChecker is anything with a Ping: the database, Redis, the event bus
// and the catalog all qualify.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to HealthChecker.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthChecks lists the dependencies /health probes. A nil checker is
// reported as disabled and does not degrade the status, since shopping lists
// may live in memory with neither Redis nor Postgres configured.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
	Catalog  HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
	Catalog  string `json:"catalog"`
}

// HealthHandler probes every configured dependency concurrently and answers
// 503 "degraded" when any of them fails.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), HealthTimeout)
		defer cancel()

		resp := healthResponse{Status: HealthOK}
		targets := []struct {
			checker HealthChecker
			result  *string
		}{
			{checks.Database, &resp.Database},
			{checks.Redis, &resp.Redis},
			{checks.EventBus, &resp.EventBus},
			{checks.Catalog, &resp.Catalog},
		}

		var wg sync.WaitGroup
		for _, t := range targets {
			if t.checker == nil {
				*t.result = HealthDisabled
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := t.checker.Ping(ctx); err != nil {
					*t.result = HealthUnreachable
					return
				}
				*t.result = HealthOK
			}()
		}
		wg.Wait()

		status := http.StatusOK
		for _, t := range targets {
			if *t.result == HealthUnreachable {
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		JSON(w, status, resp)
	}
}
