package routes

import (
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHolidayRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewHolidayRepository(db)
	hdl := handler.NewHolidayHandler(repo)

	api := app.Group("/api/admin/holidays", middleware.Auth, middleware.Role("admin"))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
