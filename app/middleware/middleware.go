package appMiddleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-kemet-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api"
)

// RecordMetrics records the duration of every request against its chi route pattern.
func RecordMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.Get().HTTPRequestDurationSeconds.Record(r.Context(), time.Since(start).Seconds(),
			metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("http.status_code", strconv.Itoa(status)),
			))
	})
}

// Recoverer turns a panic into the uniform JSON error body instead of an empty 500.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logger.ErrorContext(r.Context(), "Recovered from panic",
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
					slog.String("req_id", middleware.GetReqID(r.Context())),
				)
				api.ErrorResponse(w, r, http.StatusInternalServerError, fmt.Sprint(rvr))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
