// Package httptransport is the thin HTTP layer. Handlers delegate to domain
// services and keep transport concerns out of the business logic.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"contactsdemo/internal/platform/metrics"
	"contactsdemo/internal/platform/middleware"
)

// Deps carries everything the router needs. Handlers receive their own
// narrow interface slices.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Session  SessionService
	Access   AccessService
	Contacts ContactsService
	Seeder   ContactSeeder
	Social   SocialService
}

// NewRouter wires the middleware chain and every public endpoint.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	NewSessionHandler(deps.Session, deps.Logger).Register(r)
	NewAccessHandler(deps.Access).Register(r)
	NewContactsHandler(deps.Contacts, deps.Seeder).Register(r)
	NewSocialHandler(deps.Social).Register(r)

	return r
}
