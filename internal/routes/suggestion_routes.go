package routes

import (
	"time"

	"escala-backend/config"
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"
	"escala-backend/internal/suggestion"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSuggestionRoutes(app *fiber.App, db *gorm.DB) {
	client := suggestion.NewClient(
		config.GetEnv("SUGGESTION_URL", "http://localhost:8090"),
		time.Duration(config.GetEnvAsInt("SUGGESTION_TIMEOUT_SECONDS", 30))*time.Second,
	)
	hdl := handler.NewSuggestionHandler(client, repository.NewEmployeeRepository(db), repository.NewShiftRepository(db))

	api := app.Group("/api/admin/suggestions", middleware.Auth, middleware.Role("admin"))
	api.Post("/apply", hdl.Apply)
}
