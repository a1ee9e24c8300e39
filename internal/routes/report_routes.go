package routes

import (
	"escala-backend/internal/handler"
	"escala-backend/internal/middleware"
	"escala-backend/internal/repository"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	payroll := usecase.NewPayrollUsecase(
		repository.NewEmployeeRepository(db),
		repository.NewShiftRepository(db),
		repository.NewDeductionRepository(db),
		repository.NewHolidayRepository(db),
	)
	hdl := handler.NewReportHandler(payroll)

	api := app.Group("/api/admin/reports", middleware.Auth, middleware.Role("admin"))
	api.Get("/payroll", hdl.GetPayroll)
	api.Get("/payroll/export", hdl.ExportPayroll)
}
