// Package httptransport assembles the HTTP surface: middleware chain, public
// verification and health endpoints, and the authenticated certificate API.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"signet/internal/certificate/handler"
	"signet/internal/platform/middleware"
	"signet/pkg/platform/httputil"
)

// RouterConfig carries everything the router needs wired in.
type RouterConfig struct {
	Certificates *handler.Handler
	JWTValidator middleware.JWTValidator
	Logger       *slog.Logger

	// AssetDir, when set, is served read-only under /certificate_images/.
	AssetDir       string
	RequestTimeout time.Duration
}

// NewRouter builds the full route tree. Public endpoints carry the base
// middleware chain only; the certificate API additionally enforces JSON
// content and bearer auth.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	cfg.Certificates.RegisterPublic(r)

	if cfg.AssetDir != "" {
		fs := http.StripPrefix("/certificate_images/", http.FileServer(http.Dir(cfg.AssetDir)))
		r.Get("/certificate_images/*", fs.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(cfg.JWTValidator, cfg.Logger))
		cfg.Certificates.Register(r)
	})

	return r
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
