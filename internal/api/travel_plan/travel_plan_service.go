package travelPlan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-kemet-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/dataset"
	generativeAI "github.com/FACorreiaa/go-kemet-travel-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/reference"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

const (
	msgMissingAnswers = "Missing answers in request"
	msgMissingFields  = "Missing required fields. Please provide: Experiences, totalDays, Places U want, activities, season, and budget"
	msgQuotaExceeded  = "API quota exceeded. Please try again later."
)

// Stage names the step of plan generation that failed. Building the prompt
// and augmenting the plan cannot fail, so they have no stage.
type Stage string

const (
	StageInit     Stage = "init"
	StageValidate Stage = "validate"
	StageInvoke   Stage = "invoke"
	StageParse    Stage = "parse"
)

// Kind classifies a stage failure; handlers map it to a status code.
type Kind int

const (
	KindDataLoad Kind = iota + 1
	KindInvalidInput
	KindQuotaExceeded
	KindGeneration
	KindParse
	KindModelRejected
)

func (k Kind) String() string {
	switch k {
	case KindDataLoad:
		return "data_load"
	case KindInvalidInput:
		return "invalid_input"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindGeneration:
		return "generation"
	case KindParse:
		return "parse"
	case KindModelRejected:
		return "model_rejected"
	default:
		return "unknown"
	}
}

// StageError is returned by GenerateTravelPlan. Message is safe to show to
// clients. Document is set for KindModelRejected and holds the model's reply.
type StageError struct {
	Stage    Stage
	Kind     Kind
	Message  string
	Document types.TravelPlanResponse
	Err      error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

var _ Service = (*ServiceImpl)(nil)

// Service generates travel plans.
type Service interface {
	GenerateTravelPlan(ctx context.Context, answers *types.TravelAnswers) (types.TravelPlanResponse, error)
}

type ServiceImpl struct {
	logger      *slog.Logger
	repository  dataset.Repository
	generator   generativeAI.Generator
	tables      *reference.Tables
	datasetName string
}

// NewServiceImpl wires the generation pipeline. datasetPath only names the
// workbook in error messages.
func NewServiceImpl(repository dataset.Repository, generator generativeAI.Generator, tables *reference.Tables, datasetPath string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		repository:  repository,
		generator:   generator,
		tables:      tables,
		datasetName: filepath.Base(datasetPath),
	}
}

// GenerateTravelPlan runs load, validate, build, invoke, parse and augment
// in order and stops at the first failing stage.
func (s *ServiceImpl) GenerateTravelPlan(ctx context.Context, answers *types.TravelAnswers) (types.TravelPlanResponse, error) {
	interactionID := uuid.New()
	ctx, span := otel.Tracer("TravelPlanService").Start(ctx, "GenerateTravelPlan", trace.WithAttributes(
		attribute.String("interaction.id", interactionID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("interaction_id", interactionID.String()))

	plan, err := s.generate(ctx, l, answers)
	outcome := "success"
	if err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			outcome = stageErr.Kind.String()
			span.SetAttributes(attribute.String("travel_plan.stage", string(stageErr.Stage)))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate travel plan")
	} else {
		span.SetStatus(codes.Ok, "Travel plan generated")
	}
	metrics.Get().TravelPlanRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	return plan, err
}

func (s *ServiceImpl) generate(ctx context.Context, l *slog.Logger, answers *types.TravelAnswers) (types.TravelPlanResponse, error) {
	records, err := s.repository.Attractions(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load attractions", slog.Any("error", err))
		return nil, &StageError{
			Stage:   StageInit,
			Kind:    KindDataLoad,
			Message: "Failed to load data from " + s.datasetName,
			Err:     err,
		}
	}

	prefs, err := ValidatePreferences(answers)
	if err != nil {
		l.InfoContext(ctx, "Rejected travel preferences", slog.Any("error", err))
		return nil, &StageError{Stage: StageValidate, Kind: KindInvalidInput, Message: err.Error()}
	}
	l.DebugContext(ctx, "Received travel preferences",
		slog.String("total_days", prefs.TotalDays),
		slog.String("season", prefs.Season),
		slog.String("budget", prefs.Budget),
		slog.Any("places", prefs.Places))

	prompt := BuildTravelPrompt(prefs, records)
	l.DebugContext(ctx, "Built travel prompt",
		slog.Int("records", len(records)),
		slog.Int("prompt_length", len(prompt)))

	reply, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, generativeAI.ErrQuotaExceeded) {
			return nil, &StageError{Stage: StageInvoke, Kind: KindQuotaExceeded, Message: msgQuotaExceeded, Err: err}
		}
		return nil, &StageError{
			Stage:   StageInvoke,
			Kind:    KindGeneration,
			Message: "Error generating travel plan: " + err.Error(),
			Err:     err,
		}
	}

	plan, err := ParseModelResponse(reply)
	if err != nil {
		metrics.Get().ParseFailuresTotal.Add(ctx, 1)
		l.WarnContext(ctx, "Model reply rejected", slog.Any("error", err), slog.Int("response_length", len(reply)))
		return nil, &StageError{Stage: StageParse, Kind: KindParse, Message: err.Error(), Err: err}
	}
	if !plan.Succeeded() {
		l.WarnContext(ctx, "Model reported an unsuccessful plan")
		return nil, &StageError{
			Stage:    StageParse,
			Kind:     KindModelRejected,
			Message:  "model reported success=false",
			Document: plan,
		}
	}
	s.checkDayCount(ctx, l, plan, prefs.TotalDays)

	return Augment(plan, prefs.Season, prefs.Places, s.tables), nil
}

// checkDayCount logs when the itinerary length differs from the request.
func (s *ServiceImpl) checkDayCount(ctx context.Context, l *slog.Logger, plan types.TravelPlanResponse, totalDays string) {
	want, err := strconv.Atoi(strings.TrimSpace(totalDays))
	if err != nil {
		return
	}
	got, ok := dayCount(plan)
	if !ok || got == want {
		return
	}
	l.WarnContext(ctx, "Itinerary day count differs from requested total days",
		slog.Int("requested_days", want),
		slog.Int("itinerary_days", got),
		slog.String("declared_total_days", declaredDays(plan)))
}

// ValidatePreferences requires all six answers to be present and non-blank.
func ValidatePreferences(answers *types.TravelAnswers) (types.PreferenceInput, error) {
	if answers == nil {
		return types.PreferenceInput{}, errors.New(msgMissingAnswers)
	}
	if answers.Experiences.Empty() ||
		strings.TrimSpace(string(answers.TotalDays)) == "" ||
		answers.Places.Empty() ||
		answers.Activities.Empty() ||
		strings.TrimSpace(answers.Season) == "" ||
		strings.TrimSpace(string(answers.Budget)) == "" {
		return types.PreferenceInput{}, errors.New(msgMissingFields)
	}
	return types.PreferenceInput{
		Experiences: nonBlank(answers.Experiences),
		TotalDays:   strings.TrimSpace(string(answers.TotalDays)),
		Places:      nonBlank(answers.Places),
		Activities:  nonBlank(answers.Activities),
		Season:      strings.TrimSpace(answers.Season),
		Budget:      strings.TrimSpace(string(answers.Budget)),
	}, nil
}

func nonBlank(items types.StringList) []string {
	out := make([]string, 0, len(items))
	for _, v := range items {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
