package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/shopsim/internal/domain/models"
)

// Repository defines the interface for day report storage.
type Repository interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
	ListRunReports(ctx context.Context, runID string) ([]models.DailyReport, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "daily_reports",
	}, nil
}

// SaveDailyReport stores one day report.
func (r *MongoDBRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	_, err := r.collection().InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert daily report for day %d: %w", report.Day, err)
	}
	return nil
}

// ListRunReports returns the reports of one run ordered by day.
func (r *MongoDBRepository) ListRunReports(ctx context.Context, runID string) ([]models.DailyReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{"run_id": runID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports of run %s: %w", runID, err)
	}
	defer cursor.Close(ctx)

	var reports []models.DailyReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports of run %s: %w", runID, err)
	}
	return reports, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}
