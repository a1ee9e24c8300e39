package handler

import (
	"time"

	"escala-backend/internal/repository"
	"escala-backend/internal/schedule"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	employeeRepo repository.EmployeeRepository
	payroll      *usecase.PayrollUsecase
}

func NewDashboardHandler(employeeRepo repository.EmployeeRepository, payroll *usecase.PayrollUsecase) *DashboardHandler {
	return &DashboardHandler{employeeRepo: employeeRepo, payroll: payroll}
}

func (h *DashboardHandler) periodFromQuery(c *fiber.Ctx) (schedule.Period, bool) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	if year <= 0 || month < 0 || month > 12 {
		return schedule.Period{}, false
	}
	if month == 0 {
		return schedule.YearPeriod(year), true
	}
	return schedule.MonthPeriod(year, time.Month(month)), true
}

// GET /api/admin/dashboard/stats?year=2025&month=3
// The headline numbers: staff count plus the aggregated hours, values and
// day-off counts for the period. month=0 aggregates the year.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	period, ok := h.periodFromQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year or month"})
	}

	totalEmployees, err := h.employeeRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count employees"})
	}

	report, err := h.payroll.Report(period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build stats"})
	}

	return c.JSON(fiber.Map{
		"total_employees": totalEmployees,
		"totals":          report.Totals,
		"per_employee":    report.PerEmployee,
	})
}

// GET /api/admin/dashboard/idleness?year=2025&month=3&high=0.6&attention=0.3
// Threshold overrides are accepted because the bands are presentation
// policy, not physical constants.
func (h *DashboardHandler) GetIdleness(c *fiber.Ctx) error {
	period, ok := h.periodFromQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year or month"})
	}

	thresholds := schedule.AuditThresholds{
		High:      c.QueryFloat("high", schedule.DefaultThresholds.High),
		Attention: c.QueryFloat("attention", schedule.DefaultThresholds.Attention),
	}

	rows, err := h.payroll.Idleness(period, thresholds)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to run idleness audit"})
	}

	return c.JSON(fiber.Map{"data": rows})
}
