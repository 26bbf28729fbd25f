package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

// MongoDBRepository reads shoe documents from a MongoDB collection.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri, dbName, collName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	if collName == "" {
		collName = "shoes"
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: collName,
	}, nil
}

// ListShoes returns every shoe document, newest release first.
func (r *MongoDBRepository) ListShoes(ctx context.Context) ([]models.Shoe, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	opts := options.Find().SetSort(bson.D{{Key: "release_date", Value: -1}})
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query shoes: %w", err)
	}
	defer cursor.Close(ctx)

	var shoes []models.Shoe
	if err := cursor.All(ctx, &shoes); err != nil {
		return nil, fmt.Errorf("failed to decode shoes: %w", err)
	}
	return shoes, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
