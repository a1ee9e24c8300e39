package handler

import (
	"strconv"

	"escala-backend/internal/model"
	"escala-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	repo      repository.EmployeeRepository
	shiftRepo repository.ShiftRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository, shiftRepo repository.ShiftRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, shiftRepo: shiftRepo}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	search := c.Query("search")

	employees, err := h.repo.GetAll(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load employees"})
	}
	return c.JSON(fiber.Map{"data": employees})
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	employee, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return c.JSON(fiber.Map{"data": employee})
}

type CreateEmployeeRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	employee := model.Employee{
		Name:      req.Name,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
		IsActive:  true,
	}
	if err := h.repo.Create(&employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	return c.JSON(fiber.Map{
		"message": "Employee created",
		"data":    employee,
	})
}

type UpdateEmployeeRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	IsActive  *bool  `json:"is_active"`
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	employee, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Role != "" {
		employee.Role = req.Role
	}
	if req.AvatarURL != "" {
		employee.AvatarURL = req.AvatarURL
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.repo.Update(employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	return c.JSON(fiber.Map{
		"message": "Employee updated",
		"data":    employee,
	})
}

// Delete is logical: the employee is deactivated and, when asked, the
// schedule rows are purged along with it.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	purge := c.Query("purge_schedule") == "true"

	if _, err := h.repo.FindByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	if err := h.repo.Deactivate(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate employee"})
	}
	if purge {
		if err := h.shiftRepo.DeleteByEmployee(uint(id)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Employee deactivated but schedule purge failed"})
		}
	}

	return c.JSON(fiber.Map{"message": "Employee deactivated"})
}
