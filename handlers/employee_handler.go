package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-backend/models"
	"employee-management-backend/pkg/password"
	util "employee-management-backend/pkg/utils"
	"employee-management-backend/repository"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
	punchRepo    repository.PunchRepository
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepository, punchRepo repository.PunchRepository) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
	}
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.HourlyRate.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hourly_rate must not be negative"})
	}

	hourlyRate := payload.HourlyRate
	if hourlyRate.IsZero() {
		hourlyRate = models.DefaultHourlyRate
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	newEmployee := &models.Employee{
		EmployeeID:  payload.EmployeeID,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		Password:    hashedPassword,
		PhoneNumber: payload.PhoneNumber,
		Address:     payload.Address,
		Campaign:    payload.Campaign,
		Role:        payload.Role,
		HourlyRate:  hourlyRate,
		IsActive:    true,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.employeeRepo.CreateEmployee(ctx, newEmployee); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmployee) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "employee_id or email already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create employee: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Employee created",
		"employee_id": newEmployee.EmployeeID,
	})
}

// GetEmployee returns the roster record enriched with lifetime ledger totals.
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	employeeID := c.Params("employee_id")
	if claims.Role == models.RoleEmployee && claims.EmployeeID != employeeID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	enriched, err := h.withTotals(ctx, employee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute employee totals"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Employee found",
		"employee": enriched,
	})
}

// GetAllEmployees lists the roster. Managers only see regular employees.
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	role := ""
	if claims.Role == models.RoleManager {
		role = models.RoleEmployee
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.ListEmployees(ctx, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list employees"})
	}

	enriched := make([]*models.EmployeeWithTotals, 0, len(employees))
	for i := range employees {
		row, err := h.withTotals(ctx, &employees[i])
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute employee totals"})
		}
		enriched = append(enriched, row)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Employees fetched",
		"employees": enriched,
		"total":     len(enriched),
	})
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	employeeID := c.Params("employee_id")
	if claims.Role != models.RoleAdmin && claims.EmployeeID != employeeID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	// Role and rate changes stay admin-only even on a self-update.
	if claims.Role != models.RoleAdmin && (payload.Role != "" || payload.HourlyRate != nil) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins may change role or hourly_rate"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	updateData := bson.M{}
	if payload.FirstName != "" {
		updateData["first_name"] = payload.FirstName
	}
	if payload.LastName != "" {
		updateData["last_name"] = payload.LastName
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.PhoneNumber != "" {
		updateData["phone_number"] = payload.PhoneNumber
	}
	if payload.Address != "" {
		updateData["address"] = payload.Address
	}
	if payload.Campaign != "" {
		updateData["campaign"] = payload.Campaign
	}
	if payload.Role != "" {
		updateData["role"] = payload.Role
	}
	if payload.HourlyRate != nil {
		if payload.HourlyRate.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hourly_rate must not be negative"})
		}
		updateData["hourly_rate"] = *payload.HourlyRate
	}
	if payload.Password != "" {
		hashedPassword, err := password.HashPassword(payload.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
		}
		updateData["password"] = hashedPassword
	}

	if err := h.employeeRepo.UpdateEmployee(ctx, employee.ID, updateData); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmployee) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to update employee: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Employee updated",
		"employee_id": employeeID,
	})
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee ID"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.employeeRepo.DeleteEmployee(ctx, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete employee"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Employee deleted",
		"id":      id.Hex(),
	})
}

func (h *EmployeeHandler) withTotals(ctx context.Context, employee *models.Employee) (*models.EmployeeWithTotals, error) {
	records, err := h.punchRepo.FindByEmployeeID(ctx, employee.EmployeeID)
	if err != nil {
		return nil, err
	}

	totalHours := 0.0
	for i := range records {
		totalHours += records[i].Hours()
	}

	return &models.EmployeeWithTotals{
		Employee:    *employee,
		TotalHours:  totalHours,
		TotalSalary: decimal.NewFromFloat(totalHours).Mul(employee.HourlyRate).Round(2),
	}, nil
}
