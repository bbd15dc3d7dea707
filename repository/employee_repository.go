package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-management-backend/config"
	"employee-management-backend/models"
)

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	ListEmployees(ctx context.Context, role string) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) error
	DeleteEmployee(ctx context.Context, id primitive.ObjectID) error
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository() EmployeeRepository {
	return &employeeRepository{
		collection: config.GetCollection(config.EmployeeCollection),
	}
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmployee
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by employee_id: %w", err)
	}
	return &employee, nil
}

// ListEmployees returns the roster, optionally restricted to one role.
func (r *employeeRepository) ListEmployees(ctx context.Context, role string) ([]models.Employee, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	if len(employees) == 0 {
		return []models.Employee{}, nil
	}
	return employees, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) error {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmployee
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
