package travelPlan

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

const noLocations = "(no locations available)"

var attractionColumns = []string{
	"name", "cultural_tip", "description", "entry_fee", "address",
	"location", "duration", "open_time", "close_time", "category",
}

// travelPromptTemplate arguments: 1 days, 2 experiences, 3 places,
// 4 activities, 5 season, 6 budget, 7 attraction table.
const travelPromptTemplate = `Create a %[1]s-day travel itinerary based on these preferences:

User Preferences:
- Experiences: %[2]s
- Places: %[3]s
- Activities: %[4]s
- Season: %[5]s
- Budget: %[6]s

Available Places and Activities Data:
%[7]s

Generate a response in exactly this JSON format:
{
    "success": true,
    "travel_plan": {
        "itinerary": {
            "days": [
                {
                    "day1": {
                        "location": {
                            "name": "place_name",
                            "description": "place_description",
                            "entry_fee": "cost_in_EGP",
                            "address": "location_address",
                            "duration": "duration_in_hours",
                            "open_time": "opening_time",
                            "close_time": "closing_time",
                            "category": "location_category"
                        },
                        "cultural_tip": "relevant_tip_from_data",
                        "recommended_time": "best_time_to_visit",
                        "photo_spots": ["spot1", "spot2"],
                        "nearby_amenities": ["amenity1", "amenity2"]
                    }
                }
            ],
            "total_budget": "%[6]s",
            "total_days": %[1]s,
            "budget_breakdown": {
                "attractions": "X EGP",
                "estimated_transport": "Y EGP",
                "estimated_meals": "Z EGP",
                "contingency": "W EGP"
            }
        },
        "trip_tips": {
            "weather": WEATHER_INFO,
            "cultural_etiquette": CULTURAL_INFO,
            "transportation": [
                "tip1",
                "tip2"
            ],
            "safety": [
                "tip1",
                "tip2"
            ]
        }
    }
}

Requirements:
1. Use only locations from the provided data
2. Each day must have exactly one location with its complete details
3. Include accurate descriptions, entry fees, and durations from the data
4. Stay within the total budget of %[6]s
5. All activities must be suitable for %[5]s
6. Follow the exact JSON format shown above
7. All costs must be in EGP
8. Ensure the suggested timings align with the location's open and close times
9. Include cultural tips and category information for each location
10. Provide detailed photo opportunity spots
11. List nearby amenities and facilities
12. Give time-specific recommendations based on weather and crowds`

// BuildTravelPrompt renders the instruction sent to the model.
func BuildTravelPrompt(prefs types.PreferenceInput, records []types.AttractionRecord) string {
	return fmt.Sprintf(travelPromptTemplate,
		prefs.TotalDays,
		joinList(prefs.Experiences),
		joinList(prefs.Places),
		joinList(prefs.Activities),
		prefs.Season,
		prefs.Budget,
		attractionTable(records),
	)
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// attractionTable lays the records out as space-aligned columns.
func attractionTable(records []types.AttractionRecord) string {
	if len(records) == 0 {
		return noLocations
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(attractionColumns, "\t"))
	for _, r := range records {
		fmt.Fprintln(w, strings.Join([]string{
			r.Name, r.CulturalTip, r.Description, r.EntryFee, r.Address,
			r.Location, r.Duration, r.OpenTime, r.CloseTime, r.Category,
		}, "\t"))
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), " \n")
}
