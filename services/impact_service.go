package services

import (
	"errors"
	"math"

	"github.com/stormbless/foodprint-backend/models"
)

// Impact of one day of an average diet. Each metric is weighted against its
// own baseline, so an average diet scores a relative total of exactly 1.0
// per day.
const (
	AvgEmissionsPerDay      = 5.46   // kg CO2eq
	AvgWaterUsePerDay       = 1181.0 // L
	AvgLandUsePerDay        = 11.4   // m2
	AvgEutrophicationPerDay = 25.9   // g PO4eq
)

// RelativeTotalImpact combines the four metrics into a unit-less score,
// weighting each equally (25% of the relative impact each).
func RelativeTotalImpact(emissions, waterUse, landUse, eutrophication float64) float64 {
	relativeEmissions := 0.25 * emissions / AvgEmissionsPerDay
	relativeWaterUse := 0.25 * waterUse / AvgWaterUsePerDay
	relativeLandUse := 0.25 * landUse / AvgLandUsePerDay
	relativeEutrophication := 0.25 * eutrophication / AvgEutrophicationPerDay

	return relativeEmissions + relativeWaterUse + relativeLandUse + relativeEutrophication
}

// TotalImpact sums every serving across every food entry.
func TotalImpact(foodEntries []models.FoodEntry) models.Impact {
	var emissions, waterUse, landUse, eutrophication float64

	for _, foodEntry := range foodEntries {
		for _, serving := range foodEntry.Servings {
			emissions += serving.Emissions
			waterUse += serving.WaterUse
			landUse += serving.LandUse
			eutrophication += serving.Eutrophication
		}
	}

	return models.Impact{
		Emissions:      emissions,
		WaterUse:       waterUse,
		LandUse:        landUse,
		Eutrophication: eutrophication,
		Total:          RelativeTotalImpact(emissions, waterUse, landUse, eutrophication),
	}
}

// AvgImpact scales the daily baseline to a number of days. The relative
// total of an average diet over n days is n by construction, so the field
// is assigned directly.
func AvgImpact(days int) models.Impact {
	d := float64(days)
	return models.Impact{
		Emissions:      d * AvgEmissionsPerDay,
		WaterUse:       d * AvgWaterUsePerDay,
		LandUse:        d * AvgLandUsePerDay,
		Eutrophication: d * AvgEutrophicationPerDay,
		Total:          d,
	}
}

// PercentageOfAvg expresses each metric of total as a percentage of avg,
// rounded to one decimal place. The baselines are fixed positive constants,
// so a zero metric in avg means a misconfiguration.
func PercentageOfAvg(total, avg models.Impact) (models.Impact, error) {
	if avg.Emissions == 0 || avg.WaterUse == 0 || avg.LandUse == 0 ||
		avg.Eutrophication == 0 || avg.Total == 0 {
		return models.Impact{}, errors.New("average impact has a zero metric")
	}

	return models.Impact{
		Emissions:      round1(total.Emissions / avg.Emissions * 100),
		WaterUse:       round1(total.WaterUse / avg.WaterUse * 100),
		LandUse:        round1(total.LandUse / avg.LandUse * 100),
		Eutrophication: round1(total.Eutrophication / avg.Eutrophication * 100),
		Total:          round1(total.Total / avg.Total * 100),
	}, nil
}

// ImpactOverTime sums each entry's servings independently, one DateImpact
// per entry. No cross-date aggregation; entries are expected pre-sorted by
// date.
func ImpactOverTime(foodEntries []models.FoodEntry) []models.DateImpact {
	impactOverTime := make([]models.DateImpact, 0, len(foodEntries))

	for _, foodEntry := range foodEntries {
		var emissions, waterUse, landUse, eutrophication float64

		for _, serving := range foodEntry.Servings {
			emissions += serving.Emissions
			waterUse += serving.WaterUse
			landUse += serving.LandUse
			eutrophication += serving.Eutrophication
		}

		impactOverTime = append(impactOverTime, models.DateImpact{
			Date:           foodEntry.Date,
			Emissions:      emissions,
			WaterUse:       waterUse,
			LandUse:        landUse,
			Eutrophication: eutrophication,
			Total:          RelativeTotalImpact(emissions, waterUse, landUse, eutrophication),
		})
	}

	return impactOverTime
}

// FoodImpacts sums amount and metrics per unique food name across all
// entries, in first-seen order. Foods are compared by their reference name.
func FoodImpacts(foodEntries []models.FoodEntry) []models.FoodImpact {
	var uniqueFoods []string
	totals := make(map[string]*models.FoodImpact)

	for _, foodEntry := range foodEntries {
		for _, serving := range foodEntry.Servings {
			fi, ok := totals[serving.Food]
			if !ok {
				fi = &models.FoodImpact{Food: serving.Food}
				totals[serving.Food] = fi
				uniqueFoods = append(uniqueFoods, serving.Food)
			}
			fi.Amount += serving.Amount
			fi.Emissions += serving.Emissions
			fi.WaterUse += serving.WaterUse
			fi.LandUse += serving.LandUse
			fi.Eutrophication += serving.Eutrophication
		}
	}

	foodImpacts := make([]models.FoodImpact, 0, len(uniqueFoods))
	for _, food := range uniqueFoods {
		fi := totals[food]
		fi.TotalImpact = RelativeTotalImpact(fi.Emissions, fi.WaterUse, fi.LandUse, fi.Eutrophication)
		foodImpacts = append(foodImpacts, *fi)
	}

	return foodImpacts
}

// ImpactSummary composes the dashboard headline block. The average-diet
// comparison covers one day per entry, since each entry holds one day.
func ImpactSummary(foodEntries []models.FoodEntry) (models.ImpactSummary, error) {
	totalImpact := TotalImpact(foodEntries)
	avgImpact := AvgImpact(len(foodEntries))

	percentageOfAvg, err := PercentageOfAvg(totalImpact, avgImpact)
	if err != nil {
		return models.ImpactSummary{}, err
	}

	return models.ImpactSummary{
		TotalImpact:     totalImpact,
		AvgImpact:       avgImpact,
		PercentageOfAvg: percentageOfAvg,
		Grades:          CalcGrades(percentageOfAvg),
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
