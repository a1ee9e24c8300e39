package handler

import (
	"escala-backend/internal/model"
	"escala-backend/internal/repository"
	"escala-backend/internal/schedule"

	"github.com/gofiber/fiber/v2"
)

type DeductionHandler struct {
	repo repository.DeductionRepository
}

func NewDeductionHandler(repo repository.DeductionRepository) *DeductionHandler {
	return &DeductionHandler{repo: repo}
}

func (h *DeductionHandler) GetAll(c *fiber.Ctx) error {
	deductions, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load deductions"})
	}
	return c.JSON(fiber.Map{"data": deductions})
}

type UpdateDeductionRequest struct {
	Bucket string  `json:"bucket"`
	IR     float64 `json:"ir"`
	INSS   float64 `json:"inss"`
	Unimed float64 `json:"unimed"`
}

// PUT /api/admin/deductions
// Values are validated at this boundary: known bucket, nothing negative.
// Absent fields default to zero.
func (h *DeductionHandler) Update(c *fiber.Ctx) error {
	var req UpdateDeductionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	bucket := schedule.Bucket(req.Bucket)
	if bucket != schedule.Bucket40H && bucket != schedule.Bucket20H {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bucket must be 40H or 20H"})
	}
	if req.IR < 0 || req.INSS < 0 || req.Unimed < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Deduction values cannot be negative"})
	}

	deduction := model.Deduction{
		Bucket: req.Bucket,
		IR:     req.IR,
		INSS:   req.INSS,
		Unimed: req.Unimed,
	}
	if err := h.repo.Upsert(&deduction); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save deductions"})
	}

	return c.JSON(fiber.Map{"message": "Deductions saved"})
}
