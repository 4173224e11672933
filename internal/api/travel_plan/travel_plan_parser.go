package travelPlan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

var ErrParse = errors.New("model response could not be parsed")

const (
	msgNoJSON           = "No valid JSON found in response"
	msgMissingKeys      = "Invalid response format - missing required keys"
	msgMissingItinerary = "Invalid itinerary format - missing required fields"
	parseFailurePrefix  = "Failed to parse response: "
)

var (
	requiredTopLevelKeys  = []string{"success", "travel_plan"}
	requiredItineraryKeys = []string{"days", "total_budget", "total_days"}
)

// ParseError describes why a model reply was rejected. Message is the text
// shown to clients after the "Failed to parse response: " prefix.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return parseFailurePrefix + e.Message
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// ParseModelResponse extracts the JSON object between the first '{' and the
// last '}' of text and checks it has the itinerary shape. Anything around
// the object, such as markdown fences or prose, is ignored.
func ParseModelResponse(text string) (types.TravelPlanResponse, error) {
	cleaned := strings.TrimSpace(text)
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, &ParseError{Message: msgNoJSON}
	}

	dec := json.NewDecoder(strings.NewReader(cleaned[start : end+1]))
	dec.UseNumber()

	var doc types.TravelPlanResponse
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Message: "unexpected data after top-level JSON object"}
	}

	if !hasKeys(doc, requiredTopLevelKeys) {
		return nil, &ParseError{Message: msgMissingKeys}
	}

	plan, _ := doc["travel_plan"].(map[string]any)
	itinerary, _ := plan["itinerary"].(map[string]any)
	if !hasKeys(itinerary, requiredItineraryKeys) {
		return nil, &ParseError{Message: msgMissingItinerary}
	}

	return doc, nil
}

func hasKeys(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

// dayCount returns the number of entries in travel_plan.itinerary.days.
func dayCount(doc types.TravelPlanResponse) (int, bool) {
	itinerary, ok := doc.Itinerary()
	if !ok {
		return 0, false
	}
	days, ok := itinerary["days"].([]any)
	if !ok {
		return 0, false
	}
	n := 0
	for _, d := range days {
		entry, ok := d.(map[string]any)
		if !ok {
			n++
			continue
		}
		// Models return either [{"day1": ...}, {"day2": ...}] or a single
		// object holding every dayN key.
		if len(entry) > 1 && allDayKeys(entry) {
			n += len(entry)
			continue
		}
		n++
	}
	return n, true
}

func allDayKeys(m map[string]any) bool {
	for k := range m {
		if !strings.HasPrefix(k, "day") {
			return false
		}
	}
	return true
}

// declaredDays returns travel_plan.itinerary.total_days as text.
func declaredDays(doc types.TravelPlanResponse) string {
	itinerary, ok := doc.Itinerary()
	if !ok {
		return ""
	}
	switch v := itinerary["total_days"].(type) {
	case json.Number:
		return v.String()
	case string:
		return strings.TrimSpace(v)
	default:
		return fmt.Sprint(v)
	}
}
