package main

import (
	"log"

	"github.com/fruitstand/fruitstand-api/config"
	"github.com/fruitstand/fruitstand-api/database"
	"github.com/fruitstand/fruitstand-api/router"
	"github.com/fruitstand/fruitstand-api/services"
	"github.com/fruitstand/fruitstand-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.InitLogger(cfg.Log.Level)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	utils.InfoLogger.Println("Migration completed.")

	if cfg.SeedOnStart {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed demo data: %v", err)
		}
		utils.InfoLogger.Println("Demo data seeded.")
	}

	metrics := services.NewMetrics(utils.InfoLogger)
	payments := services.NewPaymentService(cfg.Payment.BaseURL, cfg.Payment.Path, cfg.Payment.Timeout)

	r := router.SetupRouter(db, payments, metrics)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
