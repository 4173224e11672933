package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/go-kemet-travel-planner/config"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/dataset"
	generativeAI "github.com/FACorreiaa/go-kemet-travel-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/reference"
	travelPlan "github.com/FACorreiaa/go-kemet-travel-planner/internal/api/travel_plan"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *slog.Logger
	Tables            *reference.Tables
	Dataset           dataset.Repository
	Generator         generativeAI.Generator
	TravelPlanHandler *travelPlan.HandlerImpl
}

// NewContainer builds the model client and wires the travel plan pipeline.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	generator, err := generativeAI.NewGenerator(ctx, generativeAI.Options{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	}, logger)
	if err != nil {
		logger.Error("Failed to create generative model client", slog.Any("error", err))
		return nil, err
	}

	return NewContainerWithGenerator(cfg, logger, generator)
}

// NewContainerWithGenerator wires the application around an existing model client.
func NewContainerWithGenerator(cfg *config.Config, logger *slog.Logger, generator generativeAI.Generator) (*Container, error) {
	tables, err := reference.Load()
	if err != nil {
		logger.Error("Failed to load reference tables", slog.Any("error", err))
		return nil, err
	}

	var repo dataset.Repository = dataset.NewExcelRepository(cfg.Dataset.Path, cfg.Dataset.Sheet, logger)
	if cfg.Dataset.Cache {
		repo = dataset.NewCachedRepository(repo, cfg.Dataset.Path, cfg.Dataset.CacheTTL, logger)
	}

	travelPlanService := travelPlan.NewServiceImpl(repo, generator, tables, cfg.Dataset.Path, logger)
	travelPlanHandler := travelPlan.NewHandlerImpl(travelPlanService, tables, logger)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Tables:            tables,
		Dataset:           repo,
		Generator:         generator,
		TravelPlanHandler: travelPlanHandler,
	}, nil
}
