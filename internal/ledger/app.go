package ledger

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"LearnHub/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	// Identity middleware: gateway headers by default, or AuthJWT when
	// the service fronts its own tokens.
	Identity func(http.Handler) http.Handler
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Ledgers.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	identity := deps.Identity
	if identity == nil {
		identity = RequireUserHeaders
	}

	r.Group(func(pr chi.Router) {
		pr.Use(identity)

		pr.Get("/cart", s.getCart)
		pr.Delete("/cart", s.clearCart)
		pr.Post("/cart/{courseID}", s.addToCart)
		pr.Delete("/cart/{courseID}", s.removeFromCart)

		pr.Get("/saved", s.getSaved)
		pr.Post("/saved/{courseID}", s.toggleSaved)

		pr.Get("/purchased", s.getPurchased)

		pr.Post("/checkout", s.checkout)
		pr.Get("/orders", s.getOrders)

		pr.Get("/courses/{courseID}/progress", s.getProgress)
		pr.Post("/courses/{courseID}/progress/{lessonID}", s.toggleProgress)

		pr.Get("/me/theme", s.getTheme)
		pr.Put("/me/theme", s.putTheme)
	})

	return r
}
