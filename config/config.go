package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/stormbless/foodprint-backend/models"
)

var DB *gorm.DB

// InitDB loads the environment and connects to the MySQL reference impact
// table. The food entry store is not opened here; each entry operation dials
// its own Mongo client via ConnectMongo.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, using process environment")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("MYSQL_USER"),
		os.Getenv("MYSQL_PASSWORD"),
		os.Getenv("MYSQL_HOST"),
		os.Getenv("MYSQL_PORT"),
		os.Getenv("MYSQL_DATABASE"),
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = DB.AutoMigrate(
		&models.Food{},
		&models.CronometerFoodMapping{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}
}

// ConnectMongo dials a fresh client scoped to one store operation. The caller
// owns the client and must disconnect it on every exit path.
func ConnectMongo(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(os.Getenv("MONGO_CONNECTION_URL")).
		SetConnectTimeout(10 * time.Second)
	return mongo.Connect(ctx, opts)
}

func MongoDatabase() string { return os.Getenv("MONGO_DATABASE") }
