package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	appLogger "github.com/FACorreiaa/go-kemet-travel-planner/app/logger"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/dataset"
	generativeAI "github.com/FACorreiaa/go-kemet-travel-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/reference"
	travelPlan "github.com/FACorreiaa/go-kemet-travel-planner/internal/api/travel_plan"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

// Prints the prompt built for a set of preferences and, with -send, the
// augmented plan the model returns for it.
//
//	go run ./scripts -days 3 -places Cairo,Luxor -season Winter -send
var (
	datasetPath = flag.String("dataset", "Kemet_Data.xlsx", "attraction workbook")
	days        = flag.String("days", "3", "trip length in days")
	experiences = flag.String("experiences", "History,Culture", "comma-separated experiences")
	places      = flag.String("places", "Cairo,Giza", "comma-separated places")
	activities  = flag.String("activities", "Sightseeing", "comma-separated activities")
	season      = flag.String("season", "Winter", "travel season")
	budget      = flag.String("budget", "15000", "budget in EGP")
	provider    = flag.String("provider", generativeAI.ProviderGemini, "gemini or openai")
	model       = flag.String("model", "gemini-2.0-flash", "the model name, e.g. gemini-2.0-flash")
	send        = flag.Bool("send", false, "send the prompt to the model")
)

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}
	logger := appLogger.New(os.Stderr, true)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	records, err := dataset.NewExcelRepository(*datasetPath, "", logger).Attractions(ctx)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	prefs, err := travelPlan.ValidatePreferences(&types.TravelAnswers{
		Experiences: split(*experiences),
		TotalDays:   types.FlexibleString(*days),
		Places:      split(*places),
		Activities:  split(*activities),
		Season:      *season,
		Budget:      types.FlexibleString(*budget),
	})
	if err != nil {
		log.Fatal(err)
	}

	prompt := travelPlan.BuildTravelPrompt(prefs, records)
	fmt.Println(prompt)
	if !*send {
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if *provider == generativeAI.ProviderOpenAI {
		apiKey = os.Getenv("LLM_API_KEY")
	}
	gen, err := generativeAI.NewGenerator(ctx, generativeAI.Options{
		Provider: *provider,
		APIKey:   apiKey,
		Model:    *model,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}

	tables, err := reference.Load()
	if err != nil {
		log.Fatal(err)
	}
	svc := travelPlan.NewServiceImpl(staticRepository(records), gen, tables, *datasetPath, logger)
	plan, err := svc.GenerateTravelPlan(ctx, &types.TravelAnswers{
		Experiences: prefs.Experiences,
		TotalDays:   types.FlexibleString(prefs.TotalDays),
		Places:      prefs.Places,
		Activities:  prefs.Activities,
		Season:      prefs.Season,
		Budget:      types.FlexibleString(prefs.Budget),
	})
	if err != nil {
		logger.Error("Generation failed", slog.Any("error", err))
		os.Exit(1)
	}
	printJSON(plan)
}

type staticRepository []types.AttractionRecord

func (s staticRepository) Attractions(context.Context) ([]types.AttractionRecord, error) {
	return s, nil
}

func split(s string) types.StringList {
	var out types.StringList
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode plan: %v", err)
	}
	fmt.Println(string(out))
}
