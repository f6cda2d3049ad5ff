package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/maojude27/FInal-project-itmajor/configs"
	"github.com/maojude27/FInal-project-itmajor/middlewares"
	"github.com/maojude27/FInal-project-itmajor/routes"
)

func main() {
	cfg := configs.LoadConfig()
	log := configs.NewLogger()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create upload dir failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded images (profile pictures, product photos)
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
