package handler

import (
	"regexp"
	"strconv"

	"escala-backend/internal/model"
	"escala-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// The fixed national list lives in the schedule package; this handler only
// manages the extra admin dates layered on top of it.
type HolidayHandler struct {
	repo repository.HolidayRepository
}

func NewHolidayHandler(repo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{repo: repo}
}

var monthDayPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

func (h *HolidayHandler) GetAll(c *fiber.Ctx) error {
	holidays, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load holidays"})
	}
	return c.JSON(fiber.Map{"data": holidays})
}

type HolidayRequest struct {
	MonthDay string `json:"month_day"` // MM-DD
	Label    string `json:"label"`
}

func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var req HolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if !monthDayPattern.MatchString(req.MonthDay) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month_day must be MM-DD"})
	}

	holiday := model.Holiday{MonthDay: req.MonthDay, Label: req.Label}
	if err := h.repo.Create(&holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create holiday"})
	}
	return c.JSON(fiber.Map{
		"message": "Holiday created",
		"data":    holiday,
	})
}

func (h *HolidayHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req HolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if !monthDayPattern.MatchString(req.MonthDay) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month_day must be MM-DD"})
	}

	holiday, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Holiday not found"})
	}

	holiday.MonthDay = req.MonthDay
	holiday.Label = req.Label
	if err := h.repo.Update(holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update holiday"})
	}
	return c.JSON(fiber.Map{"message": "Holiday updated"})
}

func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete holiday"})
	}
	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}
