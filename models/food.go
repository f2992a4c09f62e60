package models

import "gorm.io/gorm"

// A food from the reference impact table. Metrics are per kg of food.
type Food struct {
	gorm.Model
	Name           string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category       string
	Emissions      float64 `gorm:"not null"` // kg CO2eq / kg
	WaterUse       float64 `gorm:"not null"` // L / kg
	LandUse        float64 `gorm:"not null"` // m2 / kg
	Eutrophication float64 `gorm:"not null"` // g PO4eq / kg
}

// Maps a Cronometer food name onto a reference food. One Cronometer name
// resolves to exactly one food; lookup is always by the Cronometer name.
type CronometerFoodMapping struct {
	gorm.Model
	CronometerFoodName string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FoodName           string `gorm:"type:varchar(255);not null"`
}

// CronometerFoodImpact is the row shape of the alias lookup join.
type CronometerFoodImpact struct {
	CronometerFoodName  string  `json:"cronometerFoodName"`
	Name                string  `json:"name"`
	EmissionsPerKg      float64 `json:"emissionsPerKg"`
	WaterUsePerKg       float64 `json:"waterUsePerKg"`
	LandUsePerKg        float64 `json:"landUsePerKg"`
	EutrophicationPerKg float64 `json:"eutrophicationPerKg"`
}

// FoodImpactPerKg is a full-catalog row sent to the frontend for the
// substitution page, including the derived relative impact per kg.
type FoodImpactPerKg struct {
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	EmissionsPerKg      float64 `json:"emissionsPerKg"`
	WaterUsePerKg       float64 `json:"waterUsePerKg"`
	LandUsePerKg        float64 `json:"landUsePerKg"`
	EutrophicationPerKg float64 `json:"eutrophicationPerKg"`
	TotalImpactPerKg    float64 `json:"totalImpactPerKg"`
}
