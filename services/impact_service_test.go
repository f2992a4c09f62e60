package services

import (
	"math"
	"testing"
	"time"

	"github.com/stormbless/foodprint-backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func day(date string) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return d
}

func sampleEntries() []models.FoodEntry {
	return []models.FoodEntry{
		{
			UserEmail: "user@example.com",
			Date:      day("2024-01-01"),
			Servings: []models.ServingImpact{
				{Food: "Apple", Amount: 150, Emissions: 0.075, WaterUse: 27, LandUse: 0.09, Eutrophication: 0.3},
				{Food: "Beef", Amount: 200, Emissions: 19.9, WaterUse: 290, LandUse: 65.3, Eutrophication: 60.2},
			},
		},
		{
			UserEmail: "user@example.com",
			Date:      day("2024-01-02"),
			Servings: []models.ServingImpact{
				{Food: "Apple", Amount: 100, Emissions: 0.05, WaterUse: 18, LandUse: 0.06, Eutrophication: 0.2},
			},
		},
	}
}

func TestRelativeTotalImpact(t *testing.T) {
	t.Run("one day of the average diet scores exactly one", func(t *testing.T) {
		got := RelativeTotalImpact(AvgEmissionsPerDay, AvgWaterUsePerDay, AvgLandUsePerDay, AvgEutrophicationPerDay)
		if got != 1.0 {
			t.Fatalf("expected 1.0, got %v", got)
		}
	})

	t.Run("linear in all metrics", func(t *testing.T) {
		base := RelativeTotalImpact(2, 300, 5, 10)
		scaled := RelativeTotalImpact(2*3, 300*3, 5*3, 10*3)
		if !almostEqual(scaled, base*3) {
			t.Fatalf("expected %v, got %v", base*3, scaled)
		}
	})

	t.Run("zero metrics score zero", func(t *testing.T) {
		if got := RelativeTotalImpact(0, 0, 0, 0); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestTotalImpact(t *testing.T) {
	total := TotalImpact(sampleEntries())

	if !almostEqual(total.Emissions, 0.075+19.9+0.05) {
		t.Errorf("emissions: got %v", total.Emissions)
	}
	if !almostEqual(total.WaterUse, 27+290+18) {
		t.Errorf("waterUse: got %v", total.WaterUse)
	}
	if !almostEqual(total.LandUse, 0.09+65.3+0.06) {
		t.Errorf("landUse: got %v", total.LandUse)
	}
	if !almostEqual(total.Eutrophication, 0.3+60.2+0.2) {
		t.Errorf("eutrophication: got %v", total.Eutrophication)
	}

	want := RelativeTotalImpact(total.Emissions, total.WaterUse, total.LandUse, total.Eutrophication)
	if total.Total != want {
		t.Errorf("total: got %v, want %v", total.Total, want)
	}
}

func TestAvgImpact(t *testing.T) {
	for _, days := range []int{0, 1, 7, 30} {
		avg := AvgImpact(days)
		if avg.Total != float64(days) {
			t.Errorf("AvgImpact(%d).Total = %v, want %d", days, avg.Total, days)
		}
		if !almostEqual(avg.Emissions, float64(days)*AvgEmissionsPerDay) {
			t.Errorf("AvgImpact(%d).Emissions = %v", days, avg.Emissions)
		}
	}
}

func TestPercentageOfAvg(t *testing.T) {
	t.Run("average diet is 100 percent everywhere", func(t *testing.T) {
		avg := AvgImpact(7)
		pct, err := PercentageOfAvg(avg, avg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for name, got := range map[string]float64{
			"emissions":      pct.Emissions,
			"waterUse":       pct.WaterUse,
			"landUse":        pct.LandUse,
			"eutrophication": pct.Eutrophication,
			"total":          pct.Total,
		} {
			if got != 100 {
				t.Errorf("%s: got %v, want 100", name, got)
			}
		}
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		avg := AvgImpact(3)
		total := models.Impact{
			Emissions:      avg.Emissions / 3,
			WaterUse:       avg.WaterUse / 3,
			LandUse:        avg.LandUse / 3,
			Eutrophication: avg.Eutrophication / 3,
			Total:          1,
		}
		pct, err := PercentageOfAvg(total, avg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pct.Emissions != 33.3 {
			t.Errorf("emissions: got %v, want 33.3", pct.Emissions)
		}
	})

	t.Run("zero baseline is an error", func(t *testing.T) {
		if _, err := PercentageOfAvg(models.Impact{}, AvgImpact(0)); err == nil {
			t.Fatal("expected error for zero average")
		}
	})
}

func TestImpactOverTime(t *testing.T) {
	servings := []models.ServingImpact{
		{Food: "Apple", Amount: 100, Emissions: 0.05, WaterUse: 18, LandUse: 0.06, Eutrophication: 0.2},
	}
	entries := []models.FoodEntry{
		{UserEmail: "user@example.com", Date: day("2024-01-01"), Servings: servings},
		{UserEmail: "user@example.com", Date: day("2024-01-02"), Servings: servings},
	}

	over := ImpactOverTime(entries)
	if len(over) != 2 {
		t.Fatalf("expected 2 date impacts, got %d", len(over))
	}
	if over[0].Date.Equal(over[1].Date) {
		t.Error("dates must not be merged")
	}
	if over[0].Emissions != over[1].Emissions || over[0].Total != over[1].Total {
		t.Error("identical servings on different dates must yield identical metrics")
	}
	if !almostEqual(over[0].Emissions, 0.05) {
		t.Errorf("emissions: got %v", over[0].Emissions)
	}
}

func TestFoodImpacts(t *testing.T) {
	entries := sampleEntries()
	foodImpacts := FoodImpacts(entries)

	if len(foodImpacts) != 2 {
		t.Fatalf("expected 2 foods, got %d", len(foodImpacts))
	}
	if foodImpacts[0].Food != "Apple" || foodImpacts[1].Food != "Beef" {
		t.Fatalf("expected first-seen order [Apple Beef], got [%s %s]", foodImpacts[0].Food, foodImpacts[1].Food)
	}

	apple := foodImpacts[0]
	if !almostEqual(apple.Amount, 250) {
		t.Errorf("apple amount: got %v, want 250", apple.Amount)
	}
	if !almostEqual(apple.Emissions, 0.125) {
		t.Errorf("apple emissions: got %v, want 0.125", apple.Emissions)
	}

	t.Run("conservation across foods", func(t *testing.T) {
		total := TotalImpact(entries)
		var emissions, waterUse, landUse, eutrophication float64
		for _, fi := range foodImpacts {
			emissions += fi.Emissions
			waterUse += fi.WaterUse
			landUse += fi.LandUse
			eutrophication += fi.Eutrophication
		}
		if !almostEqual(emissions, total.Emissions) ||
			!almostEqual(waterUse, total.WaterUse) ||
			!almostEqual(landUse, total.LandUse) ||
			!almostEqual(eutrophication, total.Eutrophication) {
			t.Error("summed food impacts must equal the total impact")
		}
	})
}

func TestImpactSummary(t *testing.T) {
	entries := sampleEntries()
	summary, err := ImpactSummary(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.AvgImpact.Total != float64(len(entries)) {
		t.Errorf("avg total: got %v, want %d", summary.AvgImpact.Total, len(entries))
	}
	if summary.Grades.OverallGrade == "" {
		t.Error("overall grade missing")
	}
	if summary.Grades.OverallGrade != CalcGrade(summary.PercentageOfAvg.Total) {
		t.Error("overall grade must come from the total percentage")
	}
}
