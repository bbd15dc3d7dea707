package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"employee-management-backend/models"
	util "employee-management-backend/pkg/utils"
	"employee-management-backend/repository"
	"employee-management-backend/service"
)

type PunchHandler struct {
	punchService *service.PunchService
	punchRepo    repository.PunchRepository
	employeeRepo repository.EmployeeRepository
}

func NewPunchHandler(punchService *service.PunchService, punchRepo repository.PunchRepository, employeeRepo repository.EmployeeRepository) *PunchHandler {
	return &PunchHandler{
		punchService: punchService,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
	}
}

// Punch performs punch_in or punch_out for the authenticated employee.
func (h *PunchHandler) Punch(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	var payload models.PunchPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()

	switch payload.Action {
	case "punch_in":
		record, err := h.punchService.PunchIn(ctx, claims.EmployeeID, now)
		if err != nil {
			if errors.Is(err, service.ErrAlreadyPunchedIn) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to punch in"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "punched in", "record": record})

	default: // punch_out, the only other value the validator lets through
		record, err := h.punchService.PunchOut(ctx, claims.EmployeeID, now)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoOpenPunch):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, service.ErrPunchOutBeforePunchIn):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to punch out"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "punched out", "record": record})
	}
}

// GetMyPunchHistory lists the authenticated employee's own punch records.
func (h *PunchHandler) GetMyPunchHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	records, err := h.punchRepo.FindByEmployeeID(ctx, claims.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch punch history"})
	}

	enriched, err := h.withEmployeeDetails(ctx, records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to enrich punch records"})
	}

	return c.Status(fiber.StatusOK).JSON(enriched)
}

// GetAllPunches lists punch records scoped by role: employees see their own,
// managers see regular employees' records, admins see everything.
func (h *PunchHandler) GetAllPunches(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var records []models.PunchRecord
	var err error

	switch claims.Role {
	case models.RoleAdmin:
		records, err = h.punchRepo.FindAll(ctx)
	case models.RoleManager:
		var staff []models.Employee
		staff, err = h.employeeRepo.ListEmployees(ctx, models.RoleEmployee)
		if err == nil {
			ids := make([]string, 0, len(staff))
			for i := range staff {
				ids = append(ids, staff[i].EmployeeID)
			}
			records, err = h.punchRepo.FindByEmployeeIDs(ctx, ids)
		}
	default:
		records, err = h.punchRepo.FindByEmployeeID(ctx, claims.EmployeeID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch punch records"})
	}

	enriched, err := h.withEmployeeDetails(ctx, records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to enrich punch records"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Punch records fetched",
		"records": enriched,
		"total":   len(enriched),
	})
}

// withEmployeeDetails joins ledger rows with the roster so every record
// carries the employee name and derived daily salary.
func (h *PunchHandler) withEmployeeDetails(ctx context.Context, records []models.PunchRecord) ([]models.PunchRecordWithEmployee, error) {
	employees, err := h.employeeRepo.ListEmployees(ctx, "")
	if err != nil {
		return nil, err
	}

	roster := make(map[string]*models.Employee, len(employees))
	for i := range employees {
		roster[employees[i].EmployeeID] = &employees[i]
	}

	enriched := make([]models.PunchRecordWithEmployee, 0, len(records))
	for i := range records {
		row := models.PunchRecordWithEmployee{PunchRecord: records[i]}
		if employee, found := roster[records[i].EmployeeID]; found {
			row.EmployeeName = employee.FullName()
			row.DailySalary = records[i].DailySalary(employee.HourlyRate)
		}
		enriched = append(enriched, row)
	}
	return enriched, nil
}
