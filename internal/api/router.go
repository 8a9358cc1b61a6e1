package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/soulsync/docs"
	"github.com/blaisecz/soulsync/internal/api/handler"
	"github.com/blaisecz/soulsync/internal/api/middleware"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	User       *handler.UserHandler
	Assessment *handler.AssessmentHandler
	Ritual     *handler.RitualHandler
	Journal    *handler.JournalHandler
	Coach      *handler.CoachHandler
	Admin      *handler.AdminHandler
}

type Router struct {
	handlers   Handlers
	metrics    *metrics.Recorder
	gatherer   prometheus.Gatherer
	adminToken string
}

func NewRouter(handlers Handlers, rec *metrics.Recorder, gatherer prometheus.Gatherer, adminToken string) *Router {
	return &Router{
		handlers:   handlers,
		metrics:    rec,
		gatherer:   gatherer,
		adminToken: adminToken,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(rt.metrics))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", metrics.Handler(rt.gatherer))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	h := rt.handlers

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/chakras", h.Assessment.Reference)

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.User.GetByID)

				r.Put("/chakras", h.Assessment.Put)
				r.Get("/chakras", h.Assessment.Get)
				r.Get("/rituals", h.Ritual.Get)

				r.Post("/journal", h.Journal.Create)
				r.Get("/journal", h.Journal.List)

				r.Post("/coach/messages", h.Coach.SendMessage)
				r.Get("/coach/messages", h.Coach.History)
				r.Post("/coach/feedback", h.Coach.Feedback)
			})
		})

		// Membership administration
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminToken(rt.adminToken))
			r.Get("/users", h.Admin.ListUsers)
			r.Patch("/users/{userId}", h.Admin.UpdateMembership)
			r.Get("/stats", h.Admin.Stats)
		})
	})

	return r
}
