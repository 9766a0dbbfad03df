package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/middleware"
	"github.com/peoplehub/hr-portal-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
	Exception  ExceptionHandler
	Leave      LeaveHandler
	Employee   EmployeeHandler
	Master     MasterHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  parseLogLevel(cfg.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Registration-form availability probe, unauthenticated.
		r.Get("/users/existence", h.Employee.CheckExistence)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", h.Employee.Me)
			r.Get("/dashboard", h.Dashboard.Employee)
			r.Post("/attendance/clock", h.Attendance.Clock)

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.MyLeaves)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListAll)
					r.Patch("/{id}/decision", h.Leave.Decide)
				})
			})

			r.Route("/exceptions", func(r chi.Router) {
				r.Post("/early-out", h.Exception.CreateEarlyOut)
				r.Post("/late-arrival", h.Exception.CreateLateArrival)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/early-out", h.Exception.ListPendingEarlyOuts)
					r.Get("/late-arrival", h.Exception.ListPendingLateArrivals)
					r.Patch("/early-out/{id}/decision", h.Exception.DecideEarlyOut)
					r.Patch("/late-arrival/{id}/decision", h.Exception.DecideLateArrival)
				})
			})

			r.Get("/payroll/report", h.Payroll.MyReport)

			r.Get("/departments", h.Master.ListDepartments)
			r.Get("/announcements", h.Master.ListAnnouncements)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/admin/dashboard", h.Dashboard.Admin)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.Directory)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/avatar", h.Employee.UploadAvatar)
					r.Get("/{id}/worked-total", h.Payroll.WorkedTotal)
				})

				r.Post("/departments", h.Master.CreateDepartment)
				r.Post("/announcements", h.Master.CreateAnnouncement)
				r.Delete("/announcements/{id}", h.Master.DeleteAnnouncement)
			})
		})
	})

	return r
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
