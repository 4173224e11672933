package travelPlan

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/reference"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

const msgMissingLocations = "Please provide a list of locations"

type HandlerImpl struct {
	service Service
	tables  *reference.Tables
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, tables *reference.Tables, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		tables:  tables,
		logger:  logger,
	}
}

// GenerateTravelPlan godoc
// @Summary      Generate a travel plan
// @Description  Builds a day-by-day Egypt itinerary from the traveller's answers and attaches weather, etiquette, transport and safety information
// @Tags         Travel Plan
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateTravelPlanRequest true "Traveller answers"
// @Success      200 {object} map[string]interface{} "Generated travel plan"
// @Failure      400 {object} types.ErrorResponse "Bad Request"
// @Failure      429 {object} types.ErrorResponse "Quota exceeded"
// @Failure      500 {object} types.ErrorResponse "Internal Server Error"
// @Router       /api/generate-travel-plan [post]
func (h *HandlerImpl) GenerateTravelPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TravelPlanHandler").Start(r.Context(), "GenerateTravelPlan", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/generate-travel-plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateTravelPlan"))
	l.DebugContext(ctx, "Generate travel plan handler invoked")

	var req types.GenerateTravelPlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil && !errors.Is(err, api.ErrEmptyBody) {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	plan, err := h.service.GenerateTravelPlan(ctx, req.Answers)
	if err != nil {
		var stageErr *StageError
		if !errors.As(err, &stageErr) {
			l.ErrorContext(ctx, "Travel plan generation failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		status := statusForKind(stageErr.Kind)
		l.ErrorContext(ctx, "Travel plan generation failed",
			slog.String("stage", string(stageErr.Stage)),
			slog.String("kind", stageErr.Kind.String()),
			slog.Int("status", status),
			slog.Any("error", err))

		if stageErr.Kind == KindModelRejected && stageErr.Document != nil {
			api.WriteJSONResponse(w, r, status, stageErr.Document)
			return
		}
		api.ErrorResponse(w, r, status, stageErr.Message)
		return
	}

	l.InfoContext(ctx, "Travel plan generated")
	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}

func statusForKind(k Kind) int {
	switch k {
	case KindInvalidInput, KindParse, KindModelRejected:
		return http.StatusBadRequest
	case KindQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WeatherRecommendations godoc
// @Summary      Get weather recommendations
// @Description  Returns what to wear, bring and watch out for in the given season
// @Tags         Travel Info
// @Produce      json
// @Param        season path string true "Season (Summer, Winter, Spring or Fall, any case)"
// @Success      200 {object} types.WeatherRecommendationsResponse
// @Failure      400 {object} types.ErrorResponse "Invalid season"
// @Router       /api/weather-recommendations/{season} [get]
func (h *HandlerImpl) WeatherRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TravelPlanHandler").Start(r.Context(), "WeatherRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/weather-recommendations/{season}"),
	))
	defer span.End()

	season := reference.NormalizeSeason(chi.URLParam(r, "season"))
	recommendations, ok := h.tables.Weather(season)
	if !ok {
		h.logger.InfoContext(ctx, "Unknown season requested", slog.String("season", season))
		api.ErrorResponse(w, r, http.StatusBadRequest,
			"Invalid season. Please choose from: "+strings.Join(reference.Seasons, ", "))
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.WeatherRecommendationsResponse{
		Success:         true,
		Season:          season,
		Recommendations: recommendations,
	})
}

// CulturalEtiquette godoc
// @Summary      Get cultural etiquette tips
// @Tags         Travel Info
// @Produce      json
// @Success      200 {object} types.CulturalEtiquetteResponse
// @Router       /api/cultural-etiquette [get]
func (h *HandlerImpl) CulturalEtiquette(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, types.CulturalEtiquetteResponse{
		Success:       true,
		EtiquetteTips: h.tables.CulturalEtiquette,
	})
}

// TransportationTips godoc
// @Summary      Get transportation tips
// @Description  Returns advice on getting around Egypt. The same advice is returned for every list of locations.
// @Tags         Travel Info
// @Accept       json
// @Produce      json
// @Param        request body types.TransportationTipsRequest true "Locations to visit"
// @Success      200 {object} types.TransportationTipsResponse
// @Failure      400 {object} types.ErrorResponse "Missing locations"
// @Router       /api/transportation-tips [post]
func (h *HandlerImpl) TransportationTips(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TravelPlanHandler").Start(r.Context(), "TransportationTips", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/transportation-tips"),
	))
	defer span.End()

	var req types.TransportationTipsRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil && !errors.Is(err, api.ErrEmptyBody) {
		h.logger.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	if len(req.Locations) == 0 {
		api.ErrorResponse(w, r, http.StatusBadRequest, msgMissingLocations)
		return
	}

	var locations types.StringList
	if err := json.Unmarshal(req.Locations, &locations); err != nil {
		h.logger.DebugContext(ctx, "Locations are not a list of names", slog.Any("error", err))
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.TransportationTipsResponse{
		Success:            true,
		TransportationTips: h.tables.TransportationTips(locations),
	})
}

// SafetyTips godoc
// @Summary      Get safety tips
// @Tags         Travel Info
// @Produce      json
// @Success      200 {object} types.SafetyTipsResponse
// @Router       /api/safety-tips [get]
func (h *HandlerImpl) SafetyTips(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, types.SafetyTipsResponse{
		Success:    true,
		SafetyTips: h.tables.SafetyTips,
	})
}
