package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-management-backend/config"
	"employee-management-backend/models"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
}

type reportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository() ReportRepository {
	return &reportRepository{
		collection: config.GetCollection(config.ReportCollection),
	}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *models.Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *reportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find report by ID: %w", err)
	}
	return &report, nil
}

func (r *reportRepository) ListReports(ctx context.Context) ([]models.Report, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}

	if len(reports) == 0 {
		return []models.Report{}, nil
	}
	return reports, nil
}
