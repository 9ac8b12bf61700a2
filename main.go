package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := config.NewLogger()

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	db, err := config.InitDB(config.GetEnv("DB_PATH", "restaurants.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	h := handlers.New(store.NewSQL(db), log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery(), middleware.CORS())
	routes.SetupRoutes(r, h)

	port := config.GetEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
