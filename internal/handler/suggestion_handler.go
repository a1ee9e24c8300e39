package handler

import (
	"fmt"
	"time"

	"escala-backend/internal/model"
	"escala-backend/internal/repository"
	"escala-backend/internal/schedule"
	"escala-backend/internal/suggestion"

	"github.com/gofiber/fiber/v2"
)

type SuggestionHandler struct {
	client       *suggestion.Client
	employeeRepo repository.EmployeeRepository
	shiftRepo    repository.ShiftRepository
}

func NewSuggestionHandler(client *suggestion.Client, employeeRepo repository.EmployeeRepository, shiftRepo repository.ShiftRepository) *SuggestionHandler {
	return &SuggestionHandler{client: client, employeeRepo: employeeRepo, shiftRepo: shiftRepo}
}

type GenerateSuggestionRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// POST /api/admin/suggestions/apply
// Asks the external generator for a month and applies it as a whole. The
// proposal is untrusted: unknown employees and shift types are dropped, each
// accepted (day, type) gets the default slot set, and the write replaces the
// month all-or-nothing. On any generator failure nothing is written and the
// caller just learns no suggestion is available.
func (h *SuggestionHandler) Apply(c *fiber.Ctx) error {
	var req GenerateSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Year <= 0 || req.Month < 1 || req.Month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year and month are required"})
	}

	employees, err := h.employeeRepo.GetActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load employees"})
	}

	proposals, err := h.client.GenerateSchedule(employees, req.Year, req.Month)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "No suggestion available"})
	}

	byID := make(map[uint]model.Employee, len(employees))
	byName := make(map[string]model.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
		byName[e.Name] = e
	}

	daysInMonth := time.Date(req.Year, time.Month(req.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	byEmployee := make(map[uint][]model.Shift)
	accepted, rejected := 0, 0

	for _, proposal := range proposals {
		employee, ok := byID[proposal.EmployeeID]
		if !ok {
			employee, ok = byName[proposal.EmployeeName]
		}
		if !ok {
			rejected += len(proposal.Shifts)
			continue
		}

		seen := make(map[int]bool)
		for _, ps := range proposal.Shifts {
			shiftType := schedule.ShiftType(ps.Type)
			if ps.Day < 1 || ps.Day > daysInMonth || !schedule.ValidShiftType(shiftType) || seen[ps.Day] {
				rejected++
				continue
			}
			seen[ps.Day] = true

			date := fmt.Sprintf("%04d-%02d-%02d", req.Year, req.Month, ps.Day)
			row := model.Shift{
				EmployeeID: employee.ID,
				Date:       date,
				Type:       string(shiftType),
			}
			for _, slot := range defaultSlots(shiftType) {
				row.Slots = append(row.Slots, model.SlotAssignment{
					Slot:      string(slot),
					StartDate: date,
					EndDate:   date,
				})
			}

			byEmployee[employee.ID] = append(byEmployee[employee.ID], row)
			accepted++
		}
	}

	if accepted == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "No suggestion available"})
	}

	if err := h.shiftRepo.ReplaceMonth(req.Year, req.Month, byEmployee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply suggestion"})
	}

	return c.JSON(fiber.Map{
		"message":  "Suggestion applied",
		"accepted": accepted,
		"rejected": rejected,
	})
}

// defaultSlots is the slot set a bare (day, type) proposal expands to:
// billable types get the two daytime slots, FINAL conventionally carries all
// three (still never paid), OFF carries none.
func defaultSlots(t schedule.ShiftType) []schedule.Slot {
	switch {
	case t == schedule.TypeFinal:
		return schedule.AllSlots()
	case t.Billable():
		return []schedule.Slot{schedule.SlotMorning, schedule.SlotAfternoon}
	default:
		return nil
	}
}
