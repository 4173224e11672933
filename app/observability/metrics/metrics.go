package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "KemetTravelPlanner"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestDurationSeconds   metric.Float64Histogram
	TravelPlanRequestsTotal      metric.Int64Counter
	LLMGenerationDurationSeconds metric.Float64Histogram
	LLMErrorsTotal               metric.Int64Counter
	ParseFailuresTotal           metric.Int64Counter
	DatasetLoadDurationSeconds   metric.Float64Histogram
	DatasetRecords               metric.Int64Gauge
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider; instruments
// created before the provider is installed are forwarded to it afterwards.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)
		m := &AppMetrics{}
		var err error

		m.HTTPRequestDurationSeconds, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.TravelPlanRequestsTotal, err = meter.Int64Counter(
			"travel_plan_requests_total",
			metric.WithDescription("Total number of travel plan generations, by outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create travel_plan_requests_total: %v", err)
		}

		m.LLMGenerationDurationSeconds, err = meter.Float64Histogram(
			"llm_generation_duration_seconds",
			metric.WithDescription("Duration of generative model calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_generation_duration_seconds: %v", err)
		}

		m.LLMErrorsTotal, err = meter.Int64Counter(
			"llm_errors_total",
			metric.WithDescription("Total number of failed generative model calls, by kind"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_errors_total: %v", err)
		}

		m.ParseFailuresTotal, err = meter.Int64Counter(
			"model_response_parse_failures_total",
			metric.WithDescription("Total number of model replies that did not match the itinerary shape"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create model_response_parse_failures_total: %v", err)
		}

		m.DatasetLoadDurationSeconds, err = meter.Float64Histogram(
			"dataset_load_duration_seconds",
			metric.WithDescription("Duration of attraction workbook loads in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create dataset_load_duration_seconds: %v", err)
		}

		m.DatasetRecords, err = meter.Int64Gauge(
			"dataset_records",
			metric.WithDescription("Number of attraction records in the last loaded snapshot"),
			metric.WithUnit("{record}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create dataset_records: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global AppMetrics, initializing it on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
