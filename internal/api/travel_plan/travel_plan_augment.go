package travelPlan

import (
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/api/reference"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

// Augment attaches travel_plan.additional_info to plan and returns it.
// The rest of the document is left as the model produced it.
func Augment(plan types.TravelPlanResponse, season string, places []string, tables *reference.Tables) types.TravelPlanResponse {
	if plan == nil {
		plan = types.TravelPlanResponse{}
	}
	plan.TravelPlan()["additional_info"] = tables.AdditionalInfo(season, places)
	return plan
}
