package service

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-backend/models"
	"employee-management-backend/repository"
)

// In-memory stores implementing the repository interfaces, mirroring the
// uniqueness guarantees the Mongo indexes provide.

type fakePunchRepo struct {
	mu      sync.Mutex
	records []models.PunchRecord
}

func (f *fakePunchRepo) CreatePunch(ctx context.Context, record *models.PunchRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].EmployeeID == record.EmployeeID && f.records[i].Date == record.Date {
			return repository.ErrDuplicatePunch
		}
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakePunchRepo) FindOpenByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && f.records[i].Date == date && f.records[i].PunchOut == nil {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakePunchRepo) ClosePunch(ctx context.Context, id primitive.ObjectID, punchOut time.Time, totalHours float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == id {
			out := punchOut
			hours := totalHours
			f.records[i].PunchOut = &out
			f.records[i].TotalHours = &hours
			f.records[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (f *fakePunchRepo) FindByDateRange(ctx context.Context, startDate, endDate string) ([]models.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PunchRecord
	for i := range f.records {
		if f.records[i].Date >= startDate && f.records[i].Date <= endDate {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakePunchRepo) FindByEmployeeAndDateRange(ctx context.Context, employeeID, startDate, endDate string) ([]models.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PunchRecord
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && f.records[i].Date >= startDate && f.records[i].Date <= endDate {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakePunchRepo) FindByEmployeeID(ctx context.Context, employeeID string) ([]models.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PunchRecord
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakePunchRepo) FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]models.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}
	var out []models.PunchRecord
	for i := range f.records {
		if wanted[f.records[i].EmployeeID] {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakePunchRepo) FindAll(ctx context.Context) ([]models.PunchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.PunchRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []models.Employee
}

func (f *fakeEmployeeRepo) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	for i := range f.employees {
		if f.employees[i].EmployeeID == employee.EmployeeID || f.employees[i].Email == employee.Email {
			return repository.ErrDuplicateEmployee
		}
	}
	f.employees = append(f.employees, *employee)
	return nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			employee := f.employees[i]
			return &employee, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	for i := range f.employees {
		if f.employees[i].EmployeeID == employeeID {
			employee := f.employees[i]
			return &employee, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) ListEmployees(ctx context.Context, role string) ([]models.Employee, error) {
	var out []models.Employee
	for i := range f.employees {
		if role == "" || f.employees[i].Role == role {
			out = append(out, f.employees[i])
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) error {
	return nil
}

func (f *fakeEmployeeRepo) DeleteEmployee(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeReportRepo struct {
	reports []models.Report
}

func (f *fakeReportRepo) CreateReport(ctx context.Context, report *models.Report) error {
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	for i := range f.reports {
		if f.reports[i].ID == id {
			report := f.reports[i]
			return &report, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) ListReports(ctx context.Context) ([]models.Report, error) {
	out := make([]models.Report, len(f.reports))
	copy(out, f.reports)
	return out, nil
}
