package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// DefaultHourlyRate is applied when an employee is created without a rate.
var DefaultHourlyRate = decimal.New(600, -2)

type Employee struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID  string             `json:"employee_id" bson:"employee_id"`
	FirstName   string             `json:"first_name" bson:"first_name"`
	LastName    string             `json:"last_name" bson:"last_name"`
	Email       string             `json:"email" bson:"email"`
	Password    string             `json:"-" bson:"password"`
	PhoneNumber string             `json:"phone_number" bson:"phone_number,omitempty"`
	Address     string             `json:"address" bson:"address,omitempty"`
	Campaign    string             `json:"campaign" bson:"campaign,omitempty"`
	Role        string             `json:"role" bson:"role"`
	HourlyRate  decimal.Decimal    `json:"hourly_rate" bson:"hourly_rate"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

func (e *Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

type EmployeeCreatePayload struct {
	EmployeeID  string          `json:"employee_id" validate:"required,min=3,max=20"`
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8,max=50"`
	PhoneNumber string          `json:"phone_number" validate:"omitempty,max=15"`
	Address     string          `json:"address" validate:"omitempty,max=255"`
	Campaign    string          `json:"campaign" validate:"omitempty,max=100"`
	Role        string          `json:"role" validate:"required,oneof=admin manager employee"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
}

type EmployeeUpdatePayload struct {
	FirstName   string           `json:"first_name,omitempty"`
	LastName    string           `json:"last_name,omitempty"`
	Email       string           `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string           `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Address     string           `json:"address,omitempty" validate:"omitempty,max=255"`
	Campaign    string           `json:"campaign,omitempty" validate:"omitempty,max=100"`
	Role        string           `json:"role,omitempty" validate:"omitempty,oneof=admin manager employee"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
	Password    string           `json:"password,omitempty" validate:"omitempty,min=8,max=50"`
}

type EmployeeLoginPayload struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// EmployeeWithTotals carries the lifetime ledger totals next to the roster
// record, mirroring the computed fields of the employee detail endpoint.
type EmployeeWithTotals struct {
	Employee
	TotalHours  float64         `json:"total_hours"`
	TotalSalary decimal.Decimal `json:"total_salary"`
}

type Claims struct {
	UserID     primitive.ObjectID `json:"user_id"`
	EmployeeID string             `json:"employee_id"`
	Role       string             `json:"role"`
}
