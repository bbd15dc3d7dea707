package router

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"employee-management-backend/config/middleware"
	"employee-management-backend/handlers"
	"employee-management-backend/repository"
	"employee-management-backend/service"
)

func SetupRoutes(app *fiber.App) {
	log.Println("Registering application routes...")

	// Repositories
	employeeRepo := repository.NewEmployeeRepository()
	punchRepo := repository.NewPunchRepository()
	reportRepo := repository.NewReportRepository()

	// Services
	punchService := service.NewPunchService(punchRepo)
	reportService := service.NewReportService(employeeRepo, punchRepo, reportRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(employeeRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, punchRepo)
	punchHandler := handlers.NewPunchHandler(punchService, punchRepo, employeeRepo)
	reportHandler := handlers.NewReportHandler(reportService, reportRepo)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Management API",
			"status":  "running",
		})
	})

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// Employee routes
	employeeGroup := api.Group("/employees", middleware.AuthMiddleware())
	employeeGroup.Get("/", employeeHandler.GetAllEmployees)
	employeeGroup.Get("/:employee_id", employeeHandler.GetEmployee)
	employeeGroup.Put("/:employee_id", employeeHandler.UpdateEmployee)

	adminEmployeeGroup := employeeGroup.Group("/", middleware.AdminMiddleware())
	adminEmployeeGroup.Post("/", employeeHandler.CreateEmployee)
	adminEmployeeGroup.Delete("/id/:id", employeeHandler.DeleteEmployee)

	// Punch routes
	punchGroup := api.Group("/punches", middleware.AuthMiddleware())
	punchGroup.Post("/punch", punchHandler.Punch)
	punchGroup.Get("/my-history", punchHandler.GetMyPunchHistory)
	punchGroup.Get("/", punchHandler.GetAllPunches)

	// Report routes, staff only
	reportGroup := api.Group("/reports", middleware.AuthMiddleware(), middleware.StaffMiddleware())
	reportGroup.Post("/", reportHandler.CreateReport)
	reportGroup.Get("/", reportHandler.GetAllReports)
	reportGroup.Get("/:id", reportHandler.GetReport)

	log.Println("All application routes registered.")
	log.Println("Available routes:")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/logout (protected)")
	log.Println("- GET  /api/v1/employees (protected)")
	log.Println("- GET  /api/v1/employees/:employee_id (protected)")
	log.Println("- PUT  /api/v1/employees/:employee_id (protected)")
	log.Println("- POST /api/v1/employees (admin only)")
	log.Println("- DELETE /api/v1/employees/id/:id (admin only)")
	log.Println("- POST /api/v1/punches/punch (protected)")
	log.Println("- GET  /api/v1/punches/my-history (protected)")
	log.Println("- GET  /api/v1/punches (protected, role-scoped)")
	log.Println("- POST /api/v1/reports (admin/manager)")
	log.Println("- GET  /api/v1/reports (admin/manager)")
	log.Println("- GET  /api/v1/reports/:id (admin/manager)")
}
