package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AttractionRecord is one row of the points-of-interest workbook.
type AttractionRecord struct {
	Name        string `json:"name"`
	CulturalTip string `json:"cultural_tip"`
	Description string `json:"description"`
	EntryFee    string `json:"entry_fee"`
	Address     string `json:"address"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
	Category    string `json:"category"`
}

// StringList accepts either a JSON array of strings or a single string.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			*s = nil
			return nil
		}
		*s = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*s = many
	return nil
}

// Empty reports whether the list has no non-blank entry.
func (s StringList) Empty() bool {
	for _, v := range s {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// FlexibleString accepts a JSON string or number and keeps its text form.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexibleString(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a string or a number: %w", err)
	}
	*f = FlexibleString(num.String())
	return nil
}

// TravelAnswers is the "answers" object posted by the planner form.
type TravelAnswers struct {
	Experiences StringList     `json:"Experiences"`
	TotalDays   FlexibleString `json:"totalDays"`
	Places      StringList     `json:"Places U want"`
	Activities  StringList     `json:"activities"`
	Season      string         `json:"season"`
	Budget      FlexibleString `json:"budget"`
}

// UnmarshalJSON ignores keys the planner form adds beyond the six answers.
func (a *TravelAnswers) UnmarshalJSON(data []byte) error {
	type plain TravelAnswers
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*a = TravelAnswers(out)
	return nil
}

// GenerateTravelPlanRequest is the body of POST /api/generate-travel-plan.
type GenerateTravelPlanRequest struct {
	Answers *TravelAnswers `json:"answers"`
}

// PreferenceInput is a validated set of travel preferences.
type PreferenceInput struct {
	Experiences []string
	TotalDays   string
	Places      []string
	Activities  []string
	Season      string
	Budget      string
}

// TransportationTipsRequest is the body of POST /api/transportation-tips.
type TransportationTipsRequest struct {
	Locations json.RawMessage `json:"locations"`
}

// TravelPlanResponse is the model document after parsing. Keys the service
// does not know about are passed through untouched.
type TravelPlanResponse map[string]any

// TravelPlan returns the travel_plan object, creating it when absent or not an object.
func (r TravelPlanResponse) TravelPlan() map[string]any {
	plan, ok := r["travel_plan"].(map[string]any)
	if !ok {
		plan = map[string]any{}
		r["travel_plan"] = plan
	}
	return plan
}

// Itinerary returns travel_plan.itinerary when it is an object.
func (r TravelPlanResponse) Itinerary() (map[string]any, bool) {
	plan, ok := r["travel_plan"].(map[string]any)
	if !ok {
		return nil, false
	}
	itinerary, ok := plan["itinerary"].(map[string]any)
	return itinerary, ok
}

// Succeeded reports whether the document carries success == true.
func (r TravelPlanResponse) Succeeded() bool {
	ok, _ := r["success"].(bool)
	return ok
}

type WeatherRecommendation struct {
	BestTimes   string   `json:"best_times" yaml:"best_times"`
	WhatToWear  []string `json:"what_to_wear" yaml:"what_to_wear"`
	WhatToBring []string `json:"what_to_bring" yaml:"what_to_bring"`
	HealthTips  []string `json:"health_tips" yaml:"health_tips"`
}

type CulturalEtiquette struct {
	DressCode       []string `json:"dress_code" yaml:"dress_code"`
	SocialCustoms   []string `json:"social_customs" yaml:"social_customs"`
	DiningEtiquette []string `json:"dining_etiquette" yaml:"dining_etiquette"`
	GeneralTips     []string `json:"general_tips" yaml:"general_tips"`
}

type TransportationTips struct {
	GettingAround []string `json:"getting_around" yaml:"getting_around"`
	Tips          []string `json:"tips" yaml:"tips"`
	Safety        []string `json:"safety" yaml:"safety"`
}

type EmergencyContacts struct {
	TouristPolice    string `json:"tourist_police" yaml:"tourist_police"`
	Ambulance        string `json:"ambulance" yaml:"ambulance"`
	GeneralEmergency string `json:"general_emergency" yaml:"general_emergency"`
}

type UsefulPhrases struct {
	Hello       string `json:"hello" yaml:"hello"`
	ThankYou    string `json:"thank_you" yaml:"thank_you"`
	Please      string `json:"please" yaml:"please"`
	ExcuseMe    string `json:"excuse_me" yaml:"excuse_me"`
	GoodMorning string `json:"good_morning" yaml:"good_morning"`
	GoodEvening string `json:"good_evening" yaml:"good_evening"`
}

// AdditionalInfo is merged into every generated plan under travel_plan.additional_info.
type AdditionalInfo struct {
	WeatherRecommendations WeatherRecommendation `json:"weather_recommendations"`
	CulturalEtiquette      CulturalEtiquette     `json:"cultural_etiquette"`
	Transportation         TransportationTips    `json:"transportation"`
	SafetyTips             []string              `json:"safety_tips"`
	EmergencyContacts      EmergencyContacts     `json:"emergency_contacts"`
	UsefulPhrases          UsefulPhrases         `json:"useful_phrases"`
}

type StatusResponse struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	Environment string `json:"environment,omitempty"`
}

type WeatherRecommendationsResponse struct {
	Success         bool                  `json:"success"`
	Season          string                `json:"season"`
	Recommendations WeatherRecommendation `json:"recommendations"`
}

type CulturalEtiquetteResponse struct {
	Success       bool              `json:"success"`
	EtiquetteTips CulturalEtiquette `json:"etiquette_tips"`
}

type TransportationTipsResponse struct {
	Success            bool               `json:"success"`
	TransportationTips TransportationTips `json:"transportation_tips"`
}

type SafetyTipsResponse struct {
	Success    bool     `json:"success"`
	SafetyTips []string `json:"safety_tips"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
