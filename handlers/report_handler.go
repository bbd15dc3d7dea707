package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-backend/models"
	util "employee-management-backend/pkg/utils"
	"employee-management-backend/repository"
	"employee-management-backend/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	reportRepo    repository.ReportRepository
}

func NewReportHandler(reportService *service.ReportService, reportRepo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		reportRepo:    reportRepo,
	}
}

// CreateReport aggregates the requested range and persists the snapshot.
// A caller-supplied data payload bypasses aggregation.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	var payload models.ReportCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	report, err := h.reportService.CreateReport(ctx, claims.EmployeeID, &payload)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to create report: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Report created",
		"report":  report,
	})
}

func (h *ReportHandler) GetAllReports(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	reports, err := h.reportRepo.ListReports(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list reports"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Reports fetched",
		"reports": reports,
		"total":   len(reports),
	})
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid report ID"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	report, err := h.reportRepo.FindByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch report"})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Report found",
		"report":  report,
	})
}
