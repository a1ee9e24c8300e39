package handler

import (
	"time"

	"escala-backend/internal/model"
	"escala-backend/internal/repository"
	"escala-backend/internal/schedule"
	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShiftHandler struct {
	shiftRepo repository.ShiftRepository
	payroll   *usecase.PayrollUsecase
}

func NewShiftHandler(shiftRepo repository.ShiftRepository, payroll *usecase.PayrollUsecase) *ShiftHandler {
	return &ShiftHandler{shiftRepo: shiftRepo, payroll: payroll}
}

// GET /api/shifts?employee_id=3&year=2025&month=3
// Returns the employee's month grid plus its payroll totals, computed by the
// same aggregation the reports and dashboard use.
func (h *ShiftHandler) GetMonth(c *fiber.Ctx) error {
	employeeID := c.QueryInt("employee_id")
	year := c.QueryInt("year")
	month := c.QueryInt("month")

	if employeeID <= 0 || year <= 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employee_id, year and month are required"})
	}

	sched, report, err := h.payroll.EmployeeMonth(uint(employeeID), year, time.Month(month))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load schedule"})
	}

	var summary schedule.EmployeeSummary
	if len(report.PerEmployee) > 0 {
		summary = report.PerEmployee[0]
	}

	return c.JSON(fiber.Map{
		"data":    sched,
		"summary": summary,
	})
}

type ApplyShiftEditRequest struct {
	EmployeeID uint                `json:"employee_id"`
	Date       string              `json:"date"` // YYYY-MM-DD
	Type       string              `json:"type"`
	CourseName string              `json:"course_name"`
	Slots      []schedule.SlotEdit `json:"slots"`
}

// PUT /api/admin/shifts
// Runs the edit through the merge/expansion rules, then persists every
// touched day in one batch so a multi-day booking lands atomically.
func (h *ShiftHandler) ApplyEdit(c *fiber.Ctx) error {
	var req ApplyShiftEditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.EmployeeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employee_id is required"})
	}
	if _, err := time.Parse(schedule.DateLayout, req.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}
	if !schedule.ValidShiftType(schedule.ShiftType(req.Type)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown shift type"})
	}

	cal, err := h.payroll.Calendar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar"})
	}

	// Load the employee's current schedule so the merge sees assignments
	// placed by other bookings' expansions.
	rows, err := h.shiftRepo.GetByEmployee(req.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load schedule"})
	}
	sched := make(schedule.EmployeeSchedule, len(rows))
	for _, row := range rows {
		sched[row.Date] = usecase.ShiftRowToDay(row)
	}

	edit := schedule.ShiftEdit{
		Type:       schedule.ShiftType(req.Type),
		CourseName: req.CourseName,
		Slots:      req.Slots,
	}
	result := schedule.ApplyShiftEdit(cal, sched, req.Date, edit, schedule.DefaultMaxScanDays)

	days := make([]model.Shift, 0, len(result.Touched))
	for _, date := range result.Touched {
		days = append(days, usecase.DayToShiftRow(req.EmployeeID, date, result.Schedule[date]))
	}

	if err := h.shiftRepo.UpsertDays(req.EmployeeID, days); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save shift"})
	}

	return c.JSON(fiber.Map{
		"message":   "Shift saved",
		"touched":   result.Touched,
		"truncated": result.Truncated,
	})
}

type CancelSlotRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
}

// POST /api/admin/shifts/cancel
// Marks one slot assignment cancelled; it drops out of paid hours and shows
// up as lost potential instead.
func (h *ShiftHandler) CancelSlot(c *fiber.Ctx) error {
	var req CancelSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if !schedule.ValidSlot(schedule.Slot(req.Slot)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown slot"})
	}

	err := h.shiftRepo.CancelSlot(req.EmployeeID, req.Date, req.Slot)
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No such slot assignment"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel slot"})
	}

	return c.JSON(fiber.Map{"message": "Slot cancelled"})
}
