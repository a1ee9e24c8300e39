package routes

import (
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShiftRoutes(app *fiber.App, db *gorm.DB) {
	shiftRepo := repository.NewShiftRepository(db)
	payroll := usecase.NewPayrollUsecase(
		repository.NewEmployeeRepository(db),
		shiftRepo,
		repository.NewDeductionRepository(db),
		repository.NewHolidayRepository(db),
	)
	hdl := handler.NewShiftHandler(shiftRepo, payroll)

	// Staff can view any month grid
	app.Get("/api/shifts", middleware.Auth, hdl.GetMonth)

	api := app.Group("/api/admin/shifts", middleware.Auth, middleware.Role("admin"))
	api.Put("/", hdl.ApplyEdit)
	api.Post("/cancel", hdl.CancelSlot)
}
