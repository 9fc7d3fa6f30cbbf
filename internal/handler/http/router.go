package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	agentHandler AgentHandler,
	shiftHandler ShiftHandler,
	breakHandler BreakHandler,
	offDayHandler OffDayHandler,
	metricsHandler MetricsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rta-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

		r.Route("/agents", func(r chi.Router) {
			r.Get("/", agentHandler.List)
			r.Post("/", agentHandler.Create)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", shiftHandler.List)
			r.Post("/", shiftHandler.Create)
			r.Post("/bulk", shiftHandler.CreateBulk)
			r.Delete("/{shiftID}", shiftHandler.Delete)
		})

		r.Route("/breaks", func(r chi.Router) {
			r.Get("/", breakHandler.List)
			r.Post("/start", breakHandler.Start)
			r.Post("/end", breakHandler.End)
			r.Put("/{breakID}/notes", breakHandler.UpdateNotes)
			r.Get("/active", breakHandler.GetActive)
		})

		r.Route("/off-days", func(r chi.Router) {
			r.Get("/", offDayHandler.List)
			r.Post("/", offDayHandler.Create)
			r.Delete("/{offDayID}", offDayHandler.Delete)
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/agents/{agentID}", metricsHandler.GetAgentMetrics)
			r.Get("/report", metricsHandler.GetReport)
		})
	})
	return r
}
