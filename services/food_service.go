package services

import (
	"gorm.io/gorm"

	"github.com/stormbless/foodprint-backend/models"
)

// FoodService reads the static reference impact table. It never writes;
// the table is seeded out of band.
type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// CronometerFoodsImpact resolves a set of Cronometer food names to reference
// foods with their per-kg metrics, in a single query. Names without a
// mapping are simply absent from the result.
func (s *FoodService) CronometerFoodsImpact(names []string) ([]models.CronometerFoodImpact, error) {
	rows := []models.CronometerFoodImpact{}
	if len(names) == 0 {
		return rows, nil
	}

	err := s.db.
		Model(&models.Food{}).
		Select(`cronometer_food_mappings.cronometer_food_name AS cronometer_food_name,
			foods.name AS name,
			foods.emissions AS emissions_per_kg,
			foods.water_use AS water_use_per_kg,
			foods.land_use AS land_use_per_kg,
			foods.eutrophication AS eutrophication_per_kg`).
		Joins("JOIN cronometer_food_mappings ON cronometer_food_mappings.food_name = foods.name").
		Where("cronometer_food_mappings.cronometer_food_name IN ?", names).
		Scan(&rows).Error

	return rows, err
}

// AllFoodsImpactPerKg returns the whole catalog with each food's derived
// relative impact per kg.
func (s *FoodService) AllFoodsImpactPerKg() ([]models.FoodImpactPerKg, error) {
	var foods []models.Food
	if err := s.db.Find(&foods).Error; err != nil {
		return nil, err
	}

	out := make([]models.FoodImpactPerKg, 0, len(foods))
	for _, f := range foods {
		out = append(out, models.FoodImpactPerKg{
			Name:                f.Name,
			Category:            f.Category,
			EmissionsPerKg:      f.Emissions,
			WaterUsePerKg:       f.WaterUse,
			LandUsePerKg:        f.LandUse,
			EutrophicationPerKg: f.Eutrophication,
			TotalImpactPerKg:    RelativeTotalImpact(f.Emissions, f.WaterUse, f.LandUse, f.Eutrophication),
		})
	}
	return out, nil
}
