package http

import (
	"log/slog"
	"os"

	"github.com/geekganization/MOUP-sub000/internal/handler/http/middleware"
	"github.com/geekganization/MOUP-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	dashboardHandler DashboardHandler,
	workerDashboardHandler WorkerDashboardHandler,
	workplaceHandler WorkplaceHandler,
	shiftHandler ShiftHandler,
	wageHandler WageHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "moup"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workplaces", func(r chi.Router) {
				r.Get("/my", workplaceHandler.ListMine)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/", workplaceHandler.Create)
					r.Get("/{workplaceID}/members", workplaceHandler.ListMembers)
				})

				// Worker only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireWorker)
					r.Post("/join", workplaceHandler.Join)
				})
			})

			// Worker only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWorker)

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.ListMonth)
					r.Post("/", shiftHandler.Create)
					r.Put("/{shiftID}", shiftHandler.Update)
					r.Delete("/{shiftID}", shiftHandler.Delete)
				})

				r.Route("/wage-profiles", func(r chi.Router) {
					r.Post("/", wageHandler.Register)
					r.Get("/{workplaceID}", wageHandler.Get)
					r.Put("/{workplaceID}", wageHandler.Update)
				})

				r.Get("/worker-dashboard", workerDashboardHandler.GetDashboard)
			})

			// Owner only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)
				r.Get("/owner-dashboard", dashboardHandler.GetDashboard)
			})
		})
	})
	return r
}
