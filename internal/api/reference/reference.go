// Package reference holds the static travel tables merged into generated plans.
package reference

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

//go:embed reference.yml
var embeddedTables []byte

const DefaultSeason = "Spring"

// Seasons lists the seasons with weather recommendations, in display order.
var Seasons = []string{"Summer", "Winter", "Spring", "Fall"}

// Tables is read-only after construction and safe for concurrent use.
type Tables struct {
	WeatherBySeason   map[string]types.WeatherRecommendation `yaml:"weather"`
	CulturalEtiquette types.CulturalEtiquette                `yaml:"cultural_etiquette"`
	Transportation    types.TransportationTips               `yaml:"transportation"`
	SafetyTips        []string                               `yaml:"safety_tips"`
	EmergencyContacts types.EmergencyContacts                `yaml:"emergency_contacts"`
	UsefulPhrases     types.UsefulPhrases                    `yaml:"useful_phrases"`
}

// Load decodes the embedded tables.
func Load() (*Tables, error) {
	return Decode(embeddedTables)
}

// Decode parses a tables document and checks that every season is present.
func Decode(data []byte) (*Tables, error) {
	var t Tables
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode reference tables: %w", err)
	}
	for _, season := range Seasons {
		if _, ok := t.WeatherBySeason[season]; !ok {
			return nil, fmt.Errorf("reference tables: missing weather for season %q", season)
		}
	}
	return &t, nil
}

// Weather looks a season up exactly as given.
func (t *Tables) Weather(season string) (types.WeatherRecommendation, bool) {
	rec, ok := t.WeatherBySeason[season]
	return rec, ok
}

// WeatherOrDefault falls back to the Spring recommendations for unknown seasons.
func (t *Tables) WeatherOrDefault(season string) types.WeatherRecommendation {
	if rec, ok := t.Weather(season); ok {
		return rec
	}
	return t.WeatherBySeason[DefaultSeason]
}

// TransportationTips returns the transportation advice for a trip.
// The same advice applies to every location for now; locations is accepted
// so callers do not change once per-location tips exist.
func (t *Tables) TransportationTips(locations []string) types.TransportationTips {
	return t.Transportation
}

// AdditionalInfo assembles the block attached to a generated plan.
func (t *Tables) AdditionalInfo(season string, places []string) types.AdditionalInfo {
	return types.AdditionalInfo{
		WeatherRecommendations: t.WeatherOrDefault(season),
		CulturalEtiquette:      t.CulturalEtiquette,
		Transportation:         t.TransportationTips(places),
		SafetyTips:             slices.Clone(t.SafetyTips),
		EmergencyContacts:      t.EmergencyContacts,
		UsefulPhrases:          t.UsefulPhrases,
	}
}

// NormalizeSeason upper-cases the first rune and lower-cases the rest, so
// "sUMMER" becomes "Summer".
func NormalizeSeason(season string) string {
	season = strings.TrimSpace(season)
	if season == "" {
		return ""
	}
	lower := strings.ToLower(season)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}
