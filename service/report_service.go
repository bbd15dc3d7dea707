package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"employee-management-backend/models"
	"employee-management-backend/repository"
)

// employeeReportWorkers caps the per-employee fan-out of the employee report.
const employeeReportWorkers = 8

// ReportService is the single report aggregator: every call site that needs
// report data goes through here, so the three algorithms exist exactly once.
type ReportService struct {
	employees repository.EmployeeRepository
	punches   repository.PunchRepository
	reports   repository.ReportRepository
}

func NewReportService(employees repository.EmployeeRepository, punches repository.PunchRepository, reports repository.ReportRepository) *ReportService {
	return &ReportService{
		employees: employees,
		punches:   punches,
		reports:   reports,
	}
}

// GenerateReportData folds the ledger and roster into the aggregate for the
// given type. The enumeration is closed: unknown types are rejected instead
// of silently producing an empty payload.
func (s *ReportService) GenerateReportData(ctx context.Context, reportType, startDate, endDate string) (interface{}, error) {
	switch reportType {
	case models.ReportTypeAttendance:
		return s.GenerateAttendanceData(ctx, startDate, endDate)
	case models.ReportTypeSalary:
		return s.GenerateSalaryData(ctx, startDate, endDate)
	case models.ReportTypeEmployee:
		return s.GenerateEmployeeData(ctx, startDate, endDate)
	default:
		return nil, ErrUnknownReportType
	}
}

// GenerateAttendanceData groups punch records in range by employee and
// accumulates days worked and hours. Open records count as a worked day with
// zero hours. Averages are rounded to two decimal places.
func (s *ReportService) GenerateAttendanceData(ctx context.Context, startDate, endDate string) (map[string]*models.AttendanceSummary, error) {
	records, err := s.punches.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	roster, err := s.rosterByEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[string]*models.AttendanceSummary)
	for i := range records {
		record := &records[i]
		summary, ok := data[record.EmployeeID]
		if !ok {
			summary = &models.AttendanceSummary{}
			if employee, found := roster[record.EmployeeID]; found {
				summary.Name = employee.FullName()
			}
			data[record.EmployeeID] = summary
		}

		summary.DaysWorked++
		summary.TotalHours += record.Hours()
	}

	for _, summary := range data {
		if summary.DaysWorked > 0 {
			summary.AvgHoursPerDay = models.RoundHours(summary.TotalHours / float64(summary.DaysWorked))
		}
	}

	return data, nil
}

// GenerateSalaryData is the same grouping pass but accumulates pay per
// record, so the total stays correct even if a rate changed mid-range.
func (s *ReportService) GenerateSalaryData(ctx context.Context, startDate, endDate string) (map[string]*models.SalarySummary, error) {
	records, err := s.punches.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	roster, err := s.rosterByEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[string]*models.SalarySummary)
	for i := range records {
		record := &records[i]
		summary, ok := data[record.EmployeeID]
		if !ok {
			summary = &models.SalarySummary{TotalSalary: decimal.Zero}
			if employee, found := roster[record.EmployeeID]; found {
				summary.Name = employee.FullName()
				summary.HourlyRate = employee.HourlyRate
			}
			data[record.EmployeeID] = summary
		}

		summary.TotalHours += record.Hours()
		if employee, found := roster[record.EmployeeID]; found {
			summary.TotalSalary = summary.TotalSalary.Add(record.DailySalary(employee.HourlyRate))
		}
	}

	return data, nil
}

// GenerateEmployeeData iterates the roster (role=employee), not the ledger,
// so staff with zero activity in range still appear with all-zero fields.
// Per-employee folding is independent, so it fans out across workers and the
// commutative merge makes completion order irrelevant.
func (s *ReportService) GenerateEmployeeData(ctx context.Context, startDate, endDate string) (map[string]*models.EmployeeSummary, error) {
	roster, err := s.employees.ListEmployees(ctx, models.RoleEmployee)
	if err != nil {
		return nil, err
	}

	data := make(map[string]*models.EmployeeSummary, len(roster))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(employeeReportWorkers)

	for i := range roster {
		employee := roster[i]
		g.Go(func() error {
			records, err := s.punches.FindByEmployeeAndDateRange(gctx, employee.EmployeeID, startDate, endDate)
			if err != nil {
				return err
			}

			totalHours := 0.0
			for j := range records {
				totalHours += records[j].Hours()
			}

			summary := &models.EmployeeSummary{
				Name:        employee.FullName(),
				Email:       employee.Email,
				Role:        employee.Role,
				Campaign:    employee.Campaign,
				HourlyRate:  employee.HourlyRate,
				TotalHours:  totalHours,
				TotalSalary: decimal.NewFromFloat(totalHours).Mul(employee.HourlyRate).Round(2),
				DaysWorked:  len(records),
			}

			mu.Lock()
			data[employee.EmployeeID] = summary
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// CreateReport persists an immutable report snapshot. A caller-supplied data
// payload wins over aggregation, preserving the manual override path.
func (s *ReportService) CreateReport(ctx context.Context, generatedBy string, payload *models.ReportCreatePayload) (*models.Report, error) {
	var data interface{}
	if len(payload.Data) > 0 {
		data = payload.Data
	} else {
		generated, err := s.GenerateReportData(ctx, payload.ReportType, payload.StartDate, payload.EndDate)
		if err != nil {
			return nil, err
		}
		data = generated
	}

	report := &models.Report{
		ID:          primitive.NewObjectID(),
		Title:       payload.Title,
		ReportType:  payload.ReportType,
		GeneratedBy: generatedBy,
		GeneratedAt: time.Now(),
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Data:        data,
	}

	if err := s.reports.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// rosterByEmployeeID reads the full roster fresh on every call; aggregation
// never caches reads across operations.
func (s *ReportService) rosterByEmployeeID(ctx context.Context) (map[string]*models.Employee, error) {
	employees, err := s.employees.ListEmployees(ctx, "")
	if err != nil {
		return nil, err
	}

	roster := make(map[string]*models.Employee, len(employees))
	for i := range employees {
		roster[employees[i].EmployeeID] = &employees[i]
	}
	return roster, nil
}
