package http

import (
	"log/slog"
	"os"

	"github.com/giftnest/backoffice-go/internal/config"
	"github.com/giftnest/backoffice-go/internal/handler/http/middleware"
	"github.com/giftnest/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
	performanceHandler PerformanceHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "giftnest-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/scan", attendanceHandler.RecordScan)
				r.Get("/monthly", attendanceHandler.GetMonthly)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/", leaveHandler.Create)
					r.Get("/my", leaveHandler.ListMine)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", leaveHandler.ListPending)
					r.Get("/{id}", leaveHandler.Get)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/reports/employee/{id}", reportHandler.GetEmployeeReport)
				r.Post("/evaluations", performanceHandler.CreateEvaluation)
				r.Post("/feedback", performanceHandler.CreateFeedback)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Patch("/read", notificationHandler.MarkAsRead)
			})
		})
	})

	return r
}
