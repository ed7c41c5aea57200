package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/ur2ud/internal/web/handlers"
	"github.com/jusunglee/ur2ud/internal/web/middleware"
)

type Router struct {
	log        *slog.Logger
	rateLimit  int
	rateWindow time.Duration
}

func NewRouter(log *slog.Logger, rateLimit int, rateWindow time.Duration) *Router {
	return &Router{log: log, rateLimit: rateLimit, rateWindow: rateWindow}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	h := handlers.NewTransliterateHandler(r.log)
	rateLimiter := middleware.NewRateLimiter(r.rateLimit, r.rateWindow)

	mux.Handle("POST /api/v1/transliterate",
		middleware.Chain(
			http.HandlerFunc(h.Transliterate),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/schemes",
		middleware.Chain(
			http.HandlerFunc(h.Schemes),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return middleware.CORS(mux)
}
