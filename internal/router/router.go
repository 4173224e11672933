package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-kemet-travel-planner/docs"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api"
	travelPlan "github.com/FACorreiaa/go-kemet-travel-planner/internal/api/travel_plan"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

// Config contains dependencies needed for the router setup
type Config struct {
	TravelPlanHandler *travelPlan.HandlerImpl
	Environment       string
	SwaggerEnabled    bool
	// Timeout bounds the reference routes. Plan generation is left to the
	// model client's own deadlines.
	Timeout time.Duration
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request id, logger, recoverer) is applied in
// main.go before this router is mounted.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", home(cfg.Environment))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-travel-plan", cfg.TravelPlanHandler.GenerateTravelPlan)

		r.Group(func(r chi.Router) {
			if cfg.Timeout > 0 {
				r.Use(middleware.Timeout(cfg.Timeout))
			}
			r.Get("/health", health)
			r.Get("/weather-recommendations/{season}", cfg.TravelPlanHandler.WeatherRecommendations)
			r.Get("/cultural-etiquette", cfg.TravelPlanHandler.CulturalEtiquette)
			r.Post("/transportation-tips", cfg.TravelPlanHandler.TransportationTips)
			r.Get("/safety-tips", cfg.TravelPlanHandler.SafetyTips)
		})
	})

	if cfg.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	return r
}

// home godoc
// @Summary      Service status
// @Tags         Health
// @Produce      json
// @Success      200 {object} types.StatusResponse
// @Router       / [get]
func home(environment string) http.HandlerFunc {
	if environment == "" {
		environment = "development"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSONResponse(w, r, http.StatusOK, types.StatusResponse{
			Success:     true,
			Status:      "healthy",
			Message:     "API is running",
			Environment: environment,
		})
	}
}

// health godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200 {object} types.StatusResponse
// @Router       /api/health [get]
func health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, types.StatusResponse{
		Success: true,
		Status:  "healthy",
		Message: "Service is running",
	})
}
