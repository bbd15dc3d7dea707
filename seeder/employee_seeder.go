package seeder

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-backend/models"
	"employee-management-backend/pkg/password"
	"employee-management-backend/repository"
	"employee-management-backend/service"
)

// SeedEmployees creates the demo accounts. It is invoked explicitly via the
// -seed flag at deployment time and is idempotent: existing accounts are
// left alone.
func SeedEmployees(employeeRepo repository.EmployeeRepository, punchRepo repository.PunchRepository) {
	log.Println("Seeding demo employees...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defaults := []struct {
		employee  models.Employee
		plaintext string
	}{
		{
			employee: models.Employee{
				EmployeeID: "ADMIN001",
				FirstName:  "System",
				LastName:   "Administrator",
				Email:      "admin@company.com",
				Role:       models.RoleAdmin,
				HourlyRate: models.DefaultHourlyRate,
				IsActive:   true,
			},
			plaintext: "admin123",
		},
		{
			employee: models.Employee{
				EmployeeID: "MGR001",
				FirstName:  "John",
				LastName:   "Manager",
				Email:      "manager@company.com",
				Role:       models.RoleManager,
				HourlyRate: models.DefaultHourlyRate,
				IsActive:   true,
			},
			plaintext: "manager123",
		},
		{
			employee: models.Employee{
				EmployeeID: "EMP001",
				FirstName:  "Jane",
				LastName:   "Employee",
				Email:      "employee@company.com",
				Role:       models.RoleEmployee,
				Campaign:   "Marketing Campaign 2024",
				HourlyRate: decimal.New(600, -2),
				IsActive:   true,
			},
			plaintext: "employee123",
		},
	}

	for _, entry := range defaults {
		existing, err := employeeRepo.FindByEmployeeID(ctx, entry.employee.EmployeeID)
		if err != nil {
			log.Printf("Failed to look up employee %s: %v", entry.employee.EmployeeID, err)
			continue
		}
		if existing != nil {
			log.Printf("Employee %s already exists, skipping.", entry.employee.EmployeeID)
			continue
		}

		hashed, err := password.HashPassword(entry.plaintext)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		employee := entry.employee
		employee.ID = primitive.NewObjectID()
		employee.Password = hashed

		if err := employeeRepo.CreateEmployee(ctx, &employee); err != nil {
			log.Printf("Failed to create employee %s: %v", employee.EmployeeID, err)
			continue
		}
		log.Printf("Employee %s (%s) created.", employee.EmployeeID, employee.FullName())
	}

	seedPunchHistory(ctx, punchRepo)

	log.Println("Seeding finished.")
}

// seedPunchHistory gives EMP001 a closed 8.5h session for each of the last
// five weekdays so freshly seeded environments have report data.
func seedPunchHistory(ctx context.Context, punchRepo repository.PunchRepository) {
	punchService := service.NewPunchService(punchRepo)

	day := time.Now().AddDate(0, 0, -1)
	seeded := 0
	for seeded < 5 {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			day = day.AddDate(0, 0, -1)
			continue
		}

		punchIn := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, day.Location())
		punchOut := punchIn.Add(8*time.Hour + 30*time.Minute)

		if _, err := punchService.PunchIn(ctx, "EMP001", punchIn); err != nil {
			if !errors.Is(err, service.ErrAlreadyPunchedIn) {
				log.Printf("Failed to seed punch for %s: %v", day.Format(models.DateLayout), err)
			}
			day = day.AddDate(0, 0, -1)
			seeded++
			continue
		}
		if _, err := punchService.PunchOut(ctx, "EMP001", punchOut); err != nil {
			log.Printf("Failed to close seeded punch for %s: %v", day.Format(models.DateLayout), err)
		}

		day = day.AddDate(0, 0, -1)
		seeded++
	}
}
