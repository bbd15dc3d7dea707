package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-management-backend/models"
	"employee-management-backend/pkg/paseto"
	"employee-management-backend/pkg/password"
	util "employee-management-backend/pkg/utils"
	"employee-management-backend/repository"
)

type AuthHandler struct {
	employeeRepo repository.EmployeeRepository
}

func NewAuthHandler(employeeRepo repository.EmployeeRepository) *AuthHandler {
	return &AuthHandler{
		employeeRepo: employeeRepo,
	}
}

// Login authenticates by employee_id and password and returns a PASETO token
// together with the employee_id and role the frontend routes on.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.EmployeeLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByEmployeeID(ctx, payload.EmployeeID)
	if err != nil || employee == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid employee_id and password combination"})
	}

	if !employee.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Employee account is disabled"})
	}

	if !password.CheckPasswordHash(payload.Password, employee.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid employee_id and password combination"})
	}

	token, err := paseto.GenerateToken(employee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Login successful",
		"token":       token,
		"employee_id": employee.EmployeeID,
		"role":        employee.Role,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	// Tokens are stateless, so logout only tells the client to drop it.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful. Remove the token on the client side.",
	})
}
