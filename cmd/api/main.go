package main

import (
	"fmt"

	"escala-backend/config"
	"escala-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve uploaded avatars
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupShiftRoutes(app, config.DB)
	routes.SetupDeductionRoutes(app, config.DB)
	routes.SetupHolidayRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupSuggestionRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Server ready, listening on :" + port)
	app.Listen(":" + port)
}
