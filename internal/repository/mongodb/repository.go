package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/transgraos/fretelog/internal/domain/models"
)

// Repository defines the interface for closing-snapshot storage.
type Repository interface {
	SaveClosingSnapshot(ctx context.Context, snapshot models.ClosingSnapshot) error
	ListClosingSnapshots(ctx context.Context, limit int64) ([]models.ClosingSnapshot, error)
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
		collName: "fechamentos",
	}, nil
}

// SaveClosingSnapshot persists one period closing.
func (r *MongoDBRepository) SaveClosingSnapshot(ctx context.Context, snapshot models.ClosingSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	if _, err := collection.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert closing snapshot: %w", err)
	}
	return nil
}

// ListClosingSnapshots returns the most recent closings, newest first.
func (r *MongoDBRepository) ListClosingSnapshots(ctx context.Context, limit int64) ([]models.ClosingSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}

	collection := r.client.Database(r.dbName).Collection(r.collName)
	opts := options.Find().SetSort(bson.D{{Key: "gerado_em", Value: -1}}).SetLimit(limit)

	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list closing snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	var snapshots []models.ClosingSnapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode closing snapshots: %w", err)
	}
	return snapshots, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
