package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-day key format used by the punch ledger.
const DateLayout = "2006-01-02"

// PunchRecord is one work session: at most one per (employee_id, date),
// enforced by a unique compound index. Date and TotalHours are derived,
// never taken from the client.
type PunchRecord struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	PunchIn    time.Time          `json:"punch_in" bson:"punch_in"`
	PunchOut   *time.Time         `json:"punch_out,omitempty" bson:"punch_out,omitempty"`
	Date       string             `json:"date" bson:"date"`
	TotalHours *float64           `json:"total_hours,omitempty" bson:"total_hours,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// Open reports whether the session has not been punched out yet.
func (p *PunchRecord) Open() bool {
	return p.PunchOut == nil
}

// Hours returns the recorded total hours, treating an open session as 0.
func (p *PunchRecord) Hours() float64 {
	if p.TotalHours == nil {
		return 0
	}
	return *p.TotalHours
}

// DailySalary derives the pay for this session. It is never stored.
func (p *PunchRecord) DailySalary(hourlyRate decimal.Decimal) decimal.Decimal {
	if p.TotalHours == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*p.TotalHours).Mul(hourlyRate).Round(2)
}

// ComputeTotalHours converts a punch pair into hours, rounded to two decimal
// places half away from zero.
func ComputeTotalHours(punchIn, punchOut time.Time) float64 {
	return RoundHours(punchOut.Sub(punchIn).Seconds() / 3600)
}

// RoundHours rounds half away from zero to two decimal places.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

type PunchPayload struct {
	Action string `json:"action" validate:"required,oneof=punch_in punch_out"`
}

// PunchRecordWithEmployee is the listing shape: the ledger row joined with
// the owning employee's name plus the derived daily salary.
type PunchRecordWithEmployee struct {
	PunchRecord
	EmployeeName string          `json:"employee_name"`
	DailySalary  decimal.Decimal `json:"daily_salary"`
}
