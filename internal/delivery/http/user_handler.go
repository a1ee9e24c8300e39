package http

import (
	"errors"

	"escala-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Username   string `json:"username"`
		Name       string `json:"name"`
		Role       string `json:"role"`
		Password   string `json:"password"`
		EmployeeID *uint  `json:"employee_id"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}
	if input.Role == "" {
		input.Role = "staff"
	}

	err := h.usecase.Register(input.Username, input.Name, input.Role, input.Password, input.EmployeeID)
	if errors.Is(err, usecase.ErrUsernameTaken) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already registered"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Registration failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User registered successfully"})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	token, user, err := h.usecase.Login(input.Username, input.Password)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"data": fiber.Map{
			"username":    user.Username,
			"name":        user.Name,
			"role":        user.Role,
			"employee_id": user.EmployeeID,
		},
	})
}
