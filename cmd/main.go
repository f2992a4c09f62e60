package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stormbless/foodprint-backend/config"
	"github.com/stormbless/foodprint-backend/routes"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("FoodPrint backend listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
