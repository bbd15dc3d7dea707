package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-backend/models"
)

func testEmployee(employeeID, firstName, lastName, role, rate string) models.Employee {
	return models.Employee{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      employeeID + "@company.com",
		Role:       role,
		HourlyRate: decimal.RequireFromString(rate),
		IsActive:   true,
	}
}

func closedPunch(employeeID, date string, hours float64) models.PunchRecord {
	punchIn, _ := time.Parse(models.DateLayout+" 15:04", date+" 08:00")
	punchOut := punchIn.Add(time.Duration(hours * float64(time.Hour)))
	return models.PunchRecord{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		PunchIn:    punchIn,
		PunchOut:   &punchOut,
		Date:       date,
		TotalHours: &hours,
	}
}

func openPunch(employeeID, date string) models.PunchRecord {
	punchIn, _ := time.Parse(models.DateLayout+" 15:04", date+" 08:00")
	return models.PunchRecord{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		PunchIn:    punchIn,
		Date:       date,
	}
}

func newTestReportService(employees []models.Employee, records []models.PunchRecord) (*ReportService, *fakeReportRepo) {
	employeeRepo := &fakeEmployeeRepo{employees: employees}
	punchRepo := &fakePunchRepo{records: records}
	reportRepo := &fakeReportRepo{}
	return NewReportService(employeeRepo, punchRepo, reportRepo), reportRepo
}

func TestGenerateAttendanceData(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
		testEmployee("EMP002", "Bob", "Builder", models.RoleEmployee, "10.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-11", 8),
		closedPunch("EMP001", "2024-03-12", 8),
		closedPunch("EMP001", "2024-03-13", 8),
		closedPunch("EMP002", "2024-03-11", 7.5),
		openPunch("EMP002", "2024-03-12"),
	}

	svc, _ := newTestReportService(employees, records)

	data, err := svc.GenerateAttendanceData(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GenerateAttendanceData: %v", err)
	}

	emp1 := data["EMP001"]
	if emp1 == nil {
		t.Fatal("EMP001 missing from attendance data")
	}
	if emp1.Name != "Jane Employee" {
		t.Errorf("name = %q, want %q", emp1.Name, "Jane Employee")
	}
	if emp1.DaysWorked != 3 {
		t.Errorf("days_worked = %d, want 3", emp1.DaysWorked)
	}
	if emp1.TotalHours != 24 {
		t.Errorf("total_hours = %v, want 24", emp1.TotalHours)
	}
	if emp1.AvgHoursPerDay != 8 {
		t.Errorf("avg_hours_per_day = %v, want 8", emp1.AvgHoursPerDay)
	}

	// An open record counts as a worked day with zero hours.
	emp2 := data["EMP002"]
	if emp2 == nil {
		t.Fatal("EMP002 missing from attendance data")
	}
	if emp2.DaysWorked != 2 {
		t.Errorf("days_worked = %d, want 2", emp2.DaysWorked)
	}
	if emp2.TotalHours != 7.5 {
		t.Errorf("total_hours = %v, want 7.5", emp2.TotalHours)
	}
	if emp2.AvgHoursPerDay != 3.75 {
		t.Errorf("avg_hours_per_day = %v, want 3.75", emp2.AvgHoursPerDay)
	}
}

func TestGenerateAttendanceDataRangeIsInclusive(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-10", 8), // before range
		closedPunch("EMP001", "2024-03-11", 8), // start boundary
		closedPunch("EMP001", "2024-03-13", 8), // end boundary
		closedPunch("EMP001", "2024-03-14", 8), // after range
	}

	svc, _ := newTestReportService(employees, records)

	data, err := svc.GenerateAttendanceData(context.Background(), "2024-03-11", "2024-03-13")
	if err != nil {
		t.Fatalf("GenerateAttendanceData: %v", err)
	}

	if data["EMP001"].DaysWorked != 2 {
		t.Errorf("days_worked = %d, want 2 (boundaries inclusive, outside excluded)", data["EMP001"].DaysWorked)
	}
}

func TestGenerateSalaryData(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-11", 8.5),
		closedPunch("EMP001", "2024-03-12", 4),
	}

	svc, _ := newTestReportService(employees, records)

	data, err := svc.GenerateSalaryData(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GenerateSalaryData: %v", err)
	}

	summary := data["EMP001"]
	if summary == nil {
		t.Fatal("EMP001 missing from salary data")
	}
	if !summary.HourlyRate.Equal(decimal.RequireFromString("6.00")) {
		t.Errorf("hourly_rate = %s, want 6.00", summary.HourlyRate)
	}
	if summary.TotalHours != 12.5 {
		t.Errorf("total_hours = %v, want 12.5", summary.TotalHours)
	}
	// 8.5*6.00 + 4*6.00, accumulated per record.
	if !summary.TotalSalary.Equal(decimal.RequireFromString("75.00")) {
		t.Errorf("total_salary = %s, want 75.00", summary.TotalSalary)
	}
}

func TestGenerateEmployeeDataIsRosterDriven(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
		testEmployee("EMP002", "Idle", "Person", models.RoleEmployee, "9.00"),
		testEmployee("MGR001", "John", "Manager", models.RoleManager, "15.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-11", 8),
		closedPunch("EMP001", "2024-03-12", 8),
		closedPunch("MGR001", "2024-03-11", 8),
	}

	svc, _ := newTestReportService(employees, records)

	data, err := svc.GenerateEmployeeData(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GenerateEmployeeData: %v", err)
	}

	if len(data) != 2 {
		t.Fatalf("employee report has %d rows, want 2 (role=employee only)", len(data))
	}

	active := data["EMP001"]
	if active.TotalHours != 16 || active.DaysWorked != 2 {
		t.Errorf("EMP001 = %+v, want 16 hours over 2 days", active)
	}
	if !active.TotalSalary.Equal(decimal.RequireFromString("96.00")) {
		t.Errorf("EMP001 total_salary = %s, want 96.00", active.TotalSalary)
	}

	// An employee with no punches in range still appears, zeroed.
	idle := data["EMP002"]
	if idle == nil {
		t.Fatal("EMP002 missing from employee report")
	}
	if idle.TotalHours != 0 || idle.DaysWorked != 0 || !idle.TotalSalary.IsZero() {
		t.Errorf("EMP002 = %+v, want all-zero activity", idle)
	}
	if idle.Name != "Idle Person" {
		t.Errorf("EMP002 name = %q, want %q", idle.Name, "Idle Person")
	}

	if _, found := data["MGR001"]; found {
		t.Error("managers must not appear in the employee report")
	}
}

func TestPunchDrivenReportsOmitIdleEmployees(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
		testEmployee("EMP002", "Idle", "Person", models.RoleEmployee, "9.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-11", 8),
	}

	svc, _ := newTestReportService(employees, records)

	attendance, err := svc.GenerateAttendanceData(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GenerateAttendanceData: %v", err)
	}
	if _, found := attendance["EMP002"]; found {
		t.Error("attendance report must not contain employees without punches")
	}

	salary, err := svc.GenerateSalaryData(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GenerateSalaryData: %v", err)
	}
	if _, found := salary["EMP002"]; found {
		t.Error("salary report must not contain employees without punches")
	}
}

func TestGenerateReportDataRejectsUnknownType(t *testing.T) {
	svc, _ := newTestReportService(nil, nil)

	_, err := svc.GenerateReportData(context.Background(), "bogus", "2024-03-01", "2024-03-31")
	if !errors.Is(err, ErrUnknownReportType) {
		t.Fatalf("GenerateReportData error = %v, want ErrUnknownReportType", err)
	}
}

func TestGenerateReportDataIsDeterministic(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
		testEmployee("EMP002", "Bob", "Builder", models.RoleEmployee, "10.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-11", 8),
		closedPunch("EMP002", "2024-03-11", 7.5),
		closedPunch("EMP001", "2024-03-12", 6.25),
	}

	svc, _ := newTestReportService(employees, records)

	for _, reportType := range []string{models.ReportTypeAttendance, models.ReportTypeSalary, models.ReportTypeEmployee} {
		first, err := svc.GenerateReportData(context.Background(), reportType, "2024-03-01", "2024-03-31")
		if err != nil {
			t.Fatalf("GenerateReportData(%s): %v", reportType, err)
		}
		second, err := svc.GenerateReportData(context.Background(), reportType, "2024-03-01", "2024-03-31")
		if err != nil {
			t.Fatalf("GenerateReportData(%s): %v", reportType, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s report is not deterministic over an unchanged ledger", reportType)
		}
	}
}

func TestCreateReportPersistsSnapshot(t *testing.T) {
	employees := []models.Employee{
		testEmployee("EMP001", "Jane", "Employee", models.RoleEmployee, "6.00"),
	}
	records := []models.PunchRecord{
		closedPunch("EMP001", "2024-03-11", 8.5),
	}

	svc, reportRepo := newTestReportService(employees, records)

	payload := &models.ReportCreatePayload{
		Title:      "March attendance",
		ReportType: models.ReportTypeAttendance,
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-31",
	}

	report, err := svc.CreateReport(context.Background(), "MGR001", payload)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	if report.GeneratedBy != "MGR001" {
		t.Errorf("generated_by = %q, want MGR001", report.GeneratedBy)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("generated_at must be set at creation")
	}

	data, ok := report.Data.(map[string]*models.AttendanceSummary)
	if !ok {
		t.Fatalf("report data has type %T, want attendance mapping", report.Data)
	}
	if data["EMP001"].TotalHours != 8.5 {
		t.Errorf("aggregated total_hours = %v, want 8.5", data["EMP001"].TotalHours)
	}

	stored, _ := reportRepo.ListReports(context.Background())
	if len(stored) != 1 {
		t.Fatalf("stored %d reports, want 1", len(stored))
	}
}

func TestCreateReportManualOverride(t *testing.T) {
	svc, reportRepo := newTestReportService(nil, nil)

	override := map[string]interface{}{
		"EMP001": map[string]interface{}{"note": "filled in by hand"},
	}
	payload := &models.ReportCreatePayload{
		Title:      "Manual report",
		ReportType: models.ReportTypeSalary,
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-31",
		Data:       override,
	}

	report, err := svc.CreateReport(context.Background(), "ADMIN001", payload)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	if !reflect.DeepEqual(report.Data, map[string]interface{}(override)) {
		t.Errorf("report data = %v, want the caller-supplied payload as-is", report.Data)
	}

	stored, _ := reportRepo.ListReports(context.Background())
	if len(stored) != 1 {
		t.Fatalf("stored %d reports, want 1", len(stored))
	}
}
