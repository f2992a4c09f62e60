package services

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/stormbless/foodprint-backend/models"
	"github.com/stormbless/foodprint-backend/utils"
)

// CronometerFoodLookup resolves a set of Cronometer food names against the
// reference impact table.
type CronometerFoodLookup interface {
	CronometerFoodsImpact(names []string) ([]models.CronometerFoodImpact, error)
}

// TransformServingsToFoodEntries groups raw servings by date and annotates
// each with its environmental impact from the reference table, one query for
// the whole set of distinct food names. Servings whose Cronometer name has
// no reference match are dropped; unrecognized foods are excluded from the
// footprint rather than failing the sync. Entries come back sorted by date
// ascending.
//
// A lookup failure yields an empty result, which callers must read as
// "transformation did not happen", not "user ate nothing".
func TransformServingsToFoodEntries(userEmail string, servings []models.Serving, lookup CronometerFoodLookup) []models.FoodEntry {
	uniqueFoods := uniqueServingFoods(servings)

	foodImpacts, err := lookup.CronometerFoodsImpact(uniqueFoods)
	if err != nil {
		log.Error().Err(err).Str("userEmail", userEmail).Msg("reference impact lookup failed")
		return []models.FoodEntry{}
	}

	impactByName := make(map[string]models.CronometerFoodImpact, len(foodImpacts))
	for _, fi := range foodImpacts {
		impactByName[fi.CronometerFoodName] = fi
	}

	foodEntries := make([]models.FoodEntry, 0)
	for _, date := range uniqueServingDates(servings) {
		foodEntries = append(foodEntries, buildFoodEntry(userEmail, date, servings, impactByName))
	}

	sort.Slice(foodEntries, func(i, j int) bool {
		return foodEntries[i].Date.Before(foodEntries[j].Date)
	})

	return foodEntries
}

// buildFoodEntry collects the impact-annotated servings of a single date.
// The date string was already validated at the fetch boundary.
func buildFoodEntry(userEmail, date string, servings []models.Serving, impactByName map[string]models.CronometerFoodImpact) models.FoodEntry {
	foodEntry := models.FoodEntry{
		UserEmail: userEmail,
		Date:      utils.ParseDay(date),
		Servings:  []models.ServingImpact{},
	}

	for _, serving := range servings {
		if serving.Date != date {
			continue
		}
		matchingFood, ok := impactByName[serving.Food]
		if !ok {
			continue
		}
		foodEntry.Servings = append(foodEntry.Servings, newServingImpact(matchingFood, serving.Amount))
	}

	return foodEntry
}

// newServingImpact scales a food's per-kg metrics to a serving's gram
// amount.
func newServingImpact(matchingFood models.CronometerFoodImpact, servingAmount float64) models.ServingImpact {
	return models.ServingImpact{
		Food:           matchingFood.Name,
		Amount:         servingAmount,
		Emissions:      matchingFood.EmissionsPerKg * (servingAmount / 1000),
		WaterUse:       matchingFood.WaterUsePerKg * (servingAmount / 1000),
		LandUse:        matchingFood.LandUsePerKg * (servingAmount / 1000),
		Eutrophication: matchingFood.EutrophicationPerKg * (servingAmount / 1000),
	}
}

func uniqueServingFoods(servings []models.Serving) []string {
	var foods []string
	seen := make(map[string]bool)
	for _, serving := range servings {
		if !seen[serving.Food] {
			seen[serving.Food] = true
			foods = append(foods, serving.Food)
		}
	}
	return foods
}

func uniqueServingDates(servings []models.Serving) []string {
	var dates []string
	seen := make(map[string]bool)
	for _, serving := range servings {
		if !seen[serving.Date] {
			seen[serving.Date] = true
			dates = append(dates, serving.Date)
		}
	}
	return dates
}
