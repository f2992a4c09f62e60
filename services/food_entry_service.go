package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stormbless/foodprint-backend/config"
	"github.com/stormbless/foodprint-backend/models"
)

const foodEntryCollection = "user_food_entries"

// FoodEntryService stores and queries the per-day impact documents. Each
// method dials its own Mongo client and releases it before returning, so no
// shared client state survives between operations.
type FoodEntryService struct{}

func NewFoodEntryService() *FoodEntryService { return &FoodEntryService{} }

func (s *FoodEntryService) collection(client *mongo.Client) *mongo.Collection {
	return client.Database(config.MongoDatabase()).Collection(foodEntryCollection)
}

// ReplaceFoodEntries clears a user's stored history and inserts the fresh
// entries. Not a merge: a failed insert after the delete leaves the user
// with zero entries until their next sync.
func (s *FoodEntryService) ReplaceFoodEntries(ctx context.Context, userEmail string, foodEntries []models.FoodEntry) error {
	client, err := config.ConnectMongo(ctx)
	if err != nil {
		return err
	}
	defer disconnect(ctx, client)

	coll := s.collection(client)
	if _, err := coll.DeleteMany(ctx, bson.M{"userEmail": userEmail}); err != nil {
		return err
	}

	if len(foodEntries) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(foodEntries))
	for _, foodEntry := range foodEntries {
		docs = append(docs, foodEntry)
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}

// FoodEntries returns a user's entries with dates inside the inclusive
// range, sorted by date ascending.
func (s *FoodEntryService) FoodEntries(ctx context.Context, userEmail string, startDate, endDate time.Time) ([]models.FoodEntry, error) {
	client, err := config.ConnectMongo(ctx)
	if err != nil {
		return nil, err
	}
	defer disconnect(ctx, client)

	filter := bson.M{
		"userEmail": userEmail,
		"date":      bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := s.collection(client).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	foodEntries := []models.FoodEntry{}
	if err := cursor.All(ctx, &foodEntries); err != nil {
		return nil, err
	}
	return foodEntries, nil
}

func disconnect(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
}
