package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterConfig carries the settings the router needs from config.Config.
type RouterConfig struct {
	Env            string
	Version        string
	LogLevel       slog.Level
	AllowedOrigins []string
	// Metrics is mounted at /metrics when non-nil.
	Metrics        http.Handler
}

type Handlers struct {
	Leave        LeaveHandler
	Appraisal    AppraisalHandler
	Attendance   AttendanceHandler
	Profile      ProfileHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-portal"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard.GetDashboard)

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.List)
			r.Post("/", h.Leave.Apply)
			r.Get("/{id}", h.Leave.Get)
			r.Delete("/{id}", h.Leave.Withdraw)
		})

		r.Route("/appraisals", func(r chi.Router) {
			r.Get("/", h.Appraisal.List)
			r.Post("/", h.Appraisal.Create)
			r.Get("/{id}", h.Appraisal.Get)
			r.Patch("/{id}", h.Appraisal.Update)
			r.Delete("/{id}", h.Appraisal.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Mark)
			r.Get("/today", h.Attendance.Today)
			r.Get("/stats", h.Attendance.Stats)
			r.Get("/calendar", h.Attendance.Calendar)
			r.Get("/report.pdf", h.Attendance.Report)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.Profile.Get)
			r.Patch("/", h.Profile.Update)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notification.List)
			r.Post("/", h.Notification.Show)
			r.Get("/stream", h.Notification.Stream)
			r.Delete("/{id}", h.Notification.Dismiss)
		})
	})
	return r
}
