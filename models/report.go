package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportTypeAttendance = "attendance"
	ReportTypeSalary     = "salary"
	ReportTypeEmployee   = "employee"
)

// Report is an immutable snapshot: Data is fixed at creation and the record
// is never updated afterwards.
type Report struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	ReportType  string             `json:"report_type" bson:"report_type"`
	GeneratedBy string             `json:"generated_by" bson:"generated_by"`
	GeneratedAt time.Time          `json:"generated_at" bson:"generated_at"`
	StartDate   string             `json:"start_date" bson:"start_date"`
	EndDate     string             `json:"end_date" bson:"end_date"`
	Data        interface{}        `json:"data" bson:"data"`
}

type ReportCreatePayload struct {
	Title      string                 `json:"title" validate:"required,max=200"`
	ReportType string                 `json:"report_type" validate:"required,oneof=attendance salary employee"`
	StartDate  string                 `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string                 `json:"end_date" validate:"required,datetime=2006-01-02"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// AttendanceSummary is one row of the attendance report, keyed by employee_id.
type AttendanceSummary struct {
	Name           string  `json:"name" bson:"name"`
	DaysWorked     int     `json:"days_worked" bson:"days_worked"`
	TotalHours     float64 `json:"total_hours" bson:"total_hours"`
	AvgHoursPerDay float64 `json:"avg_hours_per_day" bson:"avg_hours_per_day"`
}

// SalarySummary is one row of the salary report. TotalSalary accumulates
// per-record pay so a mid-range rate change cannot skew the total.
type SalarySummary struct {
	Name        string          `json:"name" bson:"name"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" bson:"hourly_rate"`
	TotalHours  float64         `json:"total_hours" bson:"total_hours"`
	TotalSalary decimal.Decimal `json:"total_salary" bson:"total_salary"`
}

// EmployeeSummary is one row of the employee report. The report is
// roster-driven: employees with no punches in range still get a zero row.
type EmployeeSummary struct {
	Name        string          `json:"name" bson:"name"`
	Email       string          `json:"email" bson:"email"`
	Role        string          `json:"role" bson:"role"`
	Campaign    string          `json:"campaign" bson:"campaign"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" bson:"hourly_rate"`
	TotalHours  float64         `json:"total_hours" bson:"total_hours"`
	TotalSalary decimal.Decimal `json:"total_salary" bson:"total_salary"`
	DaysWorked  int             `json:"days_worked" bson:"days_worked"`
}
