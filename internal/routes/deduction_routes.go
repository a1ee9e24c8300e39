package routes

import (
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeductionRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDeductionRepository(db)
	hdl := handler.NewDeductionHandler(repo)

	api := app.Group("/api/admin/deductions", middleware.Auth, middleware.Role("admin"))
	api.Get("/", hdl.GetAll)
	api.Put("/", hdl.Update)
}
