package travelPlan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GenerateTravelPlan(ctx context.Context, answers *types.TravelAnswers) (types.TravelPlanResponse, error) {
	args := m.Called(ctx, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(types.TravelPlanResponse), args.Error(1)
}

func newTestRouter(t *testing.T, svc Service) http.Handler {
	t.Helper()
	h := NewHandlerImpl(svc, loadTables(t), discardLogger())
	r := chi.NewRouter()
	r.Post("/api/generate-travel-plan", h.GenerateTravelPlan)
	r.Get("/api/weather-recommendations/{season}", h.WeatherRecommendations)
	r.Get("/api/cultural-etiquette", h.CulturalEtiquette)
	r.Post("/api/transportation-tips", h.TransportationTips)
	r.Get("/api/safety-tips", h.SafetyTips)
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), rr.Body.String())
	return rr, decoded
}

func TestGenerateTravelPlanHandler_Success(t *testing.T) {
	svc := new(MockService)
	plan := types.TravelPlanResponse{"success": true, "travel_plan": map[string]any{"itinerary": map[string]any{"total_days": 3}}}
	svc.On("GenerateTravelPlan", mock.Anything, mock.MatchedBy(func(a *types.TravelAnswers) bool {
		return a != nil && a.TotalDays == "3" && len(a.Places) == 1 && a.Places[0] == "Giza"
	})).Return(plan, nil).Once()

	body := `{"answers": {"Experiences": "History", "totalDays": 3, "Places U want": "Giza",
		"activities": ["Sightseeing"], "season": "Winter", "budget": 12000}}`
	rr, resp := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/generate-travel-plan", body)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, true, resp["success"])
	svc.AssertExpectations(t)
}

func TestGenerateTravelPlanHandler_StageErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *StageError
		wantStatus int
	}{
		{"data load", &StageError{Stage: StageInit, Kind: KindDataLoad, Message: "Failed to load data from Kemet_Data.xlsx"}, http.StatusInternalServerError},
		{"missing fields", &StageError{Stage: StageValidate, Kind: KindInvalidInput, Message: msgMissingFields}, http.StatusBadRequest},
		{"quota", &StageError{Stage: StageInvoke, Kind: KindQuotaExceeded, Message: msgQuotaExceeded}, http.StatusTooManyRequests},
		{"generation", &StageError{Stage: StageInvoke, Kind: KindGeneration, Message: "Error generating travel plan: boom"}, http.StatusInternalServerError},
		{"parse", &StageError{Stage: StageParse, Kind: KindParse, Message: "Failed to parse response: No valid JSON found in response"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("GenerateTravelPlan", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rr, resp := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/generate-travel-plan", `{"answers": {}}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.err.Message, resp["error"])
		})
	}
}

func TestGenerateTravelPlanHandler_ModelRejected(t *testing.T) {
	svc := new(MockService)
	doc := types.TravelPlanResponse{"success": false, "travel_plan": map[string]any{}}
	svc.On("GenerateTravelPlan", mock.Anything, mock.Anything).
		Return(nil, &StageError{Stage: StageParse, Kind: KindModelRejected, Document: doc}).Once()

	rr, resp := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/generate-travel-plan", `{"answers": {}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp, "travel_plan")
}

func TestGenerateTravelPlanHandler_EmptyBodyReachesService(t *testing.T) {
	svc := new(MockService)
	svc.On("GenerateTravelPlan", mock.Anything, (*types.TravelAnswers)(nil)).
		Return(nil, &StageError{Stage: StageValidate, Kind: KindInvalidInput, Message: msgMissingAnswers}).Once()

	rr, resp := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/generate-travel-plan", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing answers in request", resp["error"])
	svc.AssertExpectations(t)
}

func TestGenerateTravelPlanHandler_BadJSON(t *testing.T) {
	svc := new(MockService)
	router := newTestRouter(t, svc)

	rr, resp := doRequest(t, router, http.MethodPost, "/api/generate-travel-plan", `{"answers": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request format: body contains badly-formed JSON", resp["error"])

	rr, resp = doRequest(t, router, http.MethodPost, "/api/generate-travel-plan", `{"answers": {}, "extra": 1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `Invalid request format: body contains unknown key "extra"`, resp["error"])

	svc.AssertNotCalled(t, "GenerateTravelPlan", mock.Anything, mock.Anything)
}

func TestGenerateTravelPlanHandler_ExtraAnswerKeys(t *testing.T) {
	svc := new(MockService)
	svc.On("GenerateTravelPlan", mock.Anything, mock.MatchedBy(func(a *types.TravelAnswers) bool {
		return a != nil && a.Season == "Winter" && string(a.Budget) == "20000"
	})).Return(types.TravelPlanResponse{"success": true, "travel_plan": map[string]any{}}, nil).Once()

	body := `{"answers": {
		"Experiences": ["History"],
		"totalDays": 2,
		"Places U want": ["Luxor"],
		"activities": ["Sightseeing"],
		"season": "Winter",
		"budget": 20000,
		"currency": "EGP"
	}}`
	rr, _ := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/generate-travel-plan", body)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestWeatherRecommendationsHandler(t *testing.T) {
	router := newTestRouter(t, new(MockService))

	rr, resp := doRequest(t, router, http.MethodGet, "/api/weather-recommendations/summer", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Summer", resp["season"])
	recs, ok := resp["recommendations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Early morning (6-10 AM) or late afternoon (4-7 PM)", recs["best_times"])

	rr, resp = doRequest(t, router, http.MethodGet, "/api/weather-recommendations/monsoon", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid season. Please choose from: Summer, Winter, Spring, Fall", resp["error"])
}

func TestStaticInfoHandlers(t *testing.T) {
	router := newTestRouter(t, new(MockService))

	rr, resp := doRequest(t, router, http.MethodGet, "/api/cultural-etiquette", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, resp["etiquette_tips"], "dress_code")

	rr, resp = doRequest(t, router, http.MethodGet, "/api/safety-tips", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	tips, ok := resp["safety_tips"].([]any)
	require.True(t, ok)
	assert.Len(t, tips, 8)
}

func TestTransportationTipsHandler(t *testing.T) {
	router := newTestRouter(t, new(MockService))

	rr, resp := doRequest(t, router, http.MethodPost, "/api/transportation-tips", `{"locations": ["Cairo", "Aswan"]}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp["transportation_tips"], "getting_around")

	for _, body := range []string{"", `{}`} {
		rr, resp = doRequest(t, router, http.MethodPost, "/api/transportation-tips", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Please provide a list of locations", resp["error"])
	}
}
