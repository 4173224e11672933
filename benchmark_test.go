package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/FACorreiaa/go-kemet-travel-planner/config"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/container"
)

// setupBenchmarkHandler builds the full handler stack with a cached workbook
// and a model mock that answers instantly.
func setupBenchmarkHandler(b *testing.B) http.Handler {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var cfg config.Config
	cfg.Environment = "benchmark"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Dataset.Path = writeTestWorkbook(b)
	cfg.Dataset.Cache = true

	generator := new(MockGenerator)
	generator.On("GenerateContent", mock.Anything, mock.Anything).Return(modelReply, nil)

	c, err := container.NewContainerWithGenerator(&cfg, logger, generator)
	if err != nil {
		b.Fatal(err)
	}
	return newRootHandler(c, logger, nil)
}

func serve(b *testing.B, handler http.Handler, method, path, body string, want int) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != want {
		b.Fatalf("%s %s: expected status %d, got %d: %s", method, path, want, w.Code, w.Body.String())
	}
}

// BenchmarkGenerateTravelPlan covers prompt building, parsing and augmentation
// with the model call stubbed out.
func BenchmarkGenerateTravelPlan(b *testing.B) {
	handler := setupBenchmarkHandler(b)
	body := answersBody(3)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		serve(b, handler, http.MethodPost, "/api/generate-travel-plan", body, http.StatusOK)
	}
}

func BenchmarkGenerateTravelPlan_Parallel(b *testing.B) {
	handler := setupBenchmarkHandler(b)
	body := answersBody(3)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest(http.MethodPost, "/api/generate-travel-plan", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				b.Errorf("expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkWeatherRecommendations(b *testing.B) {
	handler := setupBenchmarkHandler(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		serve(b, handler, http.MethodGet, "/api/weather-recommendations/summer", "", http.StatusOK)
	}
}
