package routes

import (
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	hdl := handler.NewEmployeeHandler(repo, shiftRepo)

	// Everyone logged in can browse the staff list
	app.Get("/api/employees", middleware.Auth, hdl.GetAll)
	app.Get("/api/employees/:id", middleware.Auth, hdl.GetByID)

	api := app.Group("/api/admin/employees", middleware.Auth, middleware.Role("admin"))
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
