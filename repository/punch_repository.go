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

type PunchRepository interface {
	CreatePunch(ctx context.Context, record *models.PunchRecord) error
	FindOpenByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.PunchRecord, error)
	ClosePunch(ctx context.Context, id primitive.ObjectID, punchOut time.Time, totalHours float64) error
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]models.PunchRecord, error)
	FindByEmployeeAndDateRange(ctx context.Context, employeeID, startDate, endDate string) ([]models.PunchRecord, error)
	FindByEmployeeID(ctx context.Context, employeeID string) ([]models.PunchRecord, error)
	FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]models.PunchRecord, error)
	FindAll(ctx context.Context) ([]models.PunchRecord, error)
}

type punchRepository struct {
	collection *mongo.Collection
}

func NewPunchRepository() PunchRepository {
	return &punchRepository{
		collection: config.GetCollection(config.PunchRecordCollection),
	}
}

func (r *punchRepository) CreatePunch(ctx context.Context, record *models.PunchRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePunch
		}
		return fmt.Errorf("failed to create punch record: %w", err)
	}
	return nil
}

func (r *punchRepository) FindOpenByEmployeeAndDate(ctx context.Context, employeeID, date string) (*models.PunchRecord, error) {
	var record models.PunchRecord
	filter := bson.M{
		"employee_id": employeeID,
		"date":        date,
		"punch_out":   bson.M{"$exists": false},
	}
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open punch record: %w", err)
	}
	return &record, nil
}

func (r *punchRepository) ClosePunch(ctx context.Context, id primitive.ObjectID, punchOut time.Time, totalHours float64) error {
	update := bson.M{
		"$set": bson.M{
			"punch_out":   punchOut,
			"total_hours": totalHours,
			"updated_at":  time.Now(),
		},
	}
	_, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to close punch record: %w", err)
	}
	return nil
}

// Date strings use the 2006-01-02 layout, so lexicographic range filters
// match chronological order.
func (r *punchRepository) FindByDateRange(ctx context.Context, startDate, endDate string) ([]models.PunchRecord, error) {
	filter := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}
	return r.findMany(ctx, filter)
}

func (r *punchRepository) FindByEmployeeAndDateRange(ctx context.Context, employeeID, startDate, endDate string) ([]models.PunchRecord, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": startDate, "$lte": endDate},
	}
	return r.findMany(ctx, filter)
}

func (r *punchRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]models.PunchRecord, error) {
	return r.findMany(ctx, bson.M{"employee_id": employeeID})
}

func (r *punchRepository) FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]models.PunchRecord, error) {
	if len(employeeIDs) == 0 {
		return []models.PunchRecord{}, nil
	}
	return r.findMany(ctx, bson.M{"employee_id": bson.M{"$in": employeeIDs}})
}

func (r *punchRepository) FindAll(ctx context.Context) ([]models.PunchRecord, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *punchRepository) findMany(ctx context.Context, filter bson.M) ([]models.PunchRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "punch_in", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find punch records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PunchRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode punch records: %w", err)
	}

	if len(records) == 0 {
		return []models.PunchRecord{}, nil
	}
	return records, nil
}
