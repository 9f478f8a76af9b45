package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/config"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/handler/http/middleware"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	cashAdvanceHandler CashAdvanceHandler,
	employerHandler EmployerHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeper-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	// Device endpoint. Fingerprint devices authenticate by deviceToken, not
	// JWT, and parse fixed response shapes.
	r.Post("/attendance", attendanceHandler.ClockEvent)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/employers", employerHandler.Register)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/employers", employerHandler.Get)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Patch("/", attendanceHandler.Correct)
				r.Get("/summary", attendanceHandler.PeriodSummary)
				r.Get("/weekly", attendanceHandler.WeeklySummary)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Post("/", payrollHandler.Create)
				r.Patch("/", payrollHandler.UpdateStatus)
			})

			r.Post("/cash-advance", cashAdvanceHandler.Grant)
			r.Get("/cash-advance", cashAdvanceHandler.ListLogs)
			r.Get("/cash-advance-balance", cashAdvanceHandler.ListBalances)
		})
	})

	return r
}
