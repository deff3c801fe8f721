package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hangerline/hangerline-backend-go/internal/handler/http/middleware"
	"github.com/hangerline/hangerline-backend-go/internal/handler/http/response"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/jwt"
)

// RouterOptions carries the deployment settings the router needs.
type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	Version        string
	LogLevel       slog.Level
	RequestTimeout time.Duration
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, authHandler AuthHandler, dashboardHandler DashboardHandler, lineTargetHandler LineTargetHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hangerline-dashboard"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	if opts.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", dashboardHandler.GetDashboard)
				r.Get("/trend", dashboardHandler.GetTrend)
				r.Get("/line-shares", dashboardHandler.GetLineShares)
				r.Get("/line-targets/summary", dashboardHandler.GetLineTargetSummary)
				r.Get("/line-targets/by-line", dashboardHandler.GetLineWiseTargets)
			})

			r.Route("/line-targets", func(r chi.Router) {
				r.Get("/{id}", lineTargetHandler.GetByID)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Post("/", lineTargetHandler.Create)
					r.Post("/bulk", lineTargetHandler.BulkCreate)
					r.Post("/{id}/details", lineTargetHandler.AddDetail)
					r.Put("/{id}/details/{detailID}", lineTargetHandler.UpdateDetail)
					r.Delete("/{id}/details/{detailID}", lineTargetHandler.DeleteDetail)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
