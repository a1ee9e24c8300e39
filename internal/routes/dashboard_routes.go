package routes

import (
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	payroll := usecase.NewPayrollUsecase(
		employeeRepo,
		repository.NewShiftRepository(db),
		repository.NewDeductionRepository(db),
		repository.NewHolidayRepository(db),
	)
	hdl := handler.NewDashboardHandler(employeeRepo, payroll)

	api := app.Group("/api/admin/dashboard", middleware.Auth, middleware.Role("admin"))
	api.Get("/stats", hdl.GetStats)
	api.Get("/idleness", hdl.GetIdleness)
}
