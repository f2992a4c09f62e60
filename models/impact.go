package models

import "time"

// Impact holds the four environmental metrics plus the unit-less relative
// total, where 1.0 equals one day of an average diet.
type Impact struct {
	Emissions      float64 `json:"emissions"`
	WaterUse       float64 `json:"waterUse"`
	LandUse        float64 `json:"landUse"`
	Eutrophication float64 `json:"eutrophication"`
	Total          float64 `json:"total"`
}

// DateImpact is the summed impact of a single day's servings.
type DateImpact struct {
	Date           time.Time `json:"date"`
	Emissions      float64   `json:"emissions"`
	WaterUse       float64   `json:"waterUse"`
	LandUse        float64   `json:"landUse"`
	Eutrophication float64   `json:"eutrophication"`
	Total          float64   `json:"total"`
}

// FoodImpact is one food's summed amount and impact across a date range.
type FoodImpact struct {
	Food           string  `json:"food"`
	Amount         float64 `json:"amount"`
	Emissions      float64 `json:"emissions"`
	WaterUse       float64 `json:"waterUse"`
	LandUse        float64 `json:"landUse"`
	Eutrophication float64 `json:"eutrophication"`
	TotalImpact    float64 `json:"totalImpact"`
}

// Grades holds one letter grade per metric plus the overall grade.
type Grades struct {
	EmissionsGrade      string `json:"emissionsGrade"`
	WaterUseGrade       string `json:"waterUseGrade"`
	LandUseGrade        string `json:"landUseGrade"`
	EutrophicationGrade string `json:"eutrophicationGrade"`
	OverallGrade        string `json:"overallGrade"`
}

// ImpactSummary is the headline block of the dashboard payload.
type ImpactSummary struct {
	TotalImpact     Impact `json:"totalImpact"`
	AvgImpact       Impact `json:"avgImpact"`
	PercentageOfAvg Impact `json:"percentageOfAvg"`
	Grades          Grades `json:"grades"`
}

// DashboardData is the full dashboard response.
type DashboardData struct {
	ImpactSummary  ImpactSummary `json:"impactSummary"`
	FoodImpacts    []FoodImpact  `json:"foodImpacts"`
	ImpactOverTime []DateImpact  `json:"impactOverTime"`
}
