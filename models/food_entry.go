package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serving is a raw serving as reported by the external tracker: one food
// eaten on one day, with a gram amount. Exists only in transit between the
// fetch script and transformation.
type Serving struct {
	Date   string  `json:"date"`
	Food   string  `json:"food"`
	Amount float64 `json:"amount"`
}

// FoodEntry groups one user's impact-annotated servings for a single day.
// A user's full history is the set of entries matching their email; it is
// rebuilt from scratch on every login.
type FoodEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Date      time.Time          `bson:"date" json:"date"`
	Servings  []ServingImpact    `bson:"servings" json:"servings"`
}

// ServingImpact is one serving with its environmental impact scaled to the
// serving's gram amount. Food holds the reference name, not the Cronometer
// name.
type ServingImpact struct {
	Food           string  `bson:"food" json:"food"`
	Amount         float64 `bson:"amount" json:"amount"`
	Emissions      float64 `bson:"emissions" json:"emissions"`
	WaterUse       float64 `bson:"waterUse" json:"waterUse"`
	LandUse        float64 `bson:"landUse" json:"landUse"`
	Eutrophication float64 `bson:"eutrophication" json:"eutrophication"`
}
