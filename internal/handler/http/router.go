package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/token"
)

func NewRouter(
	tokenService token.Service,
	frontendURL string,
	env string,
	meetingHandler MeetingHandler,
	leaveHandler LeaveHandler,
	teamHandler TeamHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.TokenAuth()))
			r.Use(middleware.AuthRequired(tokenService.TokenAuth()))

			r.Route("/meetings", func(r chi.Router) {
				r.Post("/", meetingHandler.Book)
				r.Get("/pending", meetingHandler.ListPending)
				r.Get("/history", meetingHandler.ListHistory)
				r.Get("/{id}", meetingHandler.Get)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/approve", meetingHandler.Approve)
					r.Post("/{id}/schedule", meetingHandler.Schedule)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/complete", meetingHandler.Complete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.File)
				r.Get("/pending", leaveHandler.ListPending)
				r.Get("/history", leaveHandler.ListHistory)
				r.Get("/{id}", leaveHandler.Get)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Post("/{id}/cancel", leaveHandler.Cancel)
				})
			})

			// Approver only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/team", teamHandler.ListTeam)
			})
		})
	})
	return r
}
