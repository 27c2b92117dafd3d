package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"clubhub/database"
	"clubhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoResourceRepo implements ResourceRepository using MongoDB.
type MongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo creates a new instance of ResourceRepository using MongoDB.
func NewMongoResourceRepo() ResourceRepository {
	repo := &MongoResourceRepo{coll: database.Collection("resources")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoResourceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a resource by its unique ID.
func (r *MongoResourceRepo) GetByID(id string) (*models.Resource, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var resource models.Resource
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&resource); err != nil {
		return nil, fmt.Errorf("failed to fetch resource with id %s: %w", id, err)
	}
	return &resource, nil
}

// GetAll retrieves all resources.
func (r *MongoResourceRepo) GetAll() ([]models.Resource, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %w", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	for cursor.Next(ctx) {
		var res models.Resource
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode resource: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// Create inserts a new resource document.
func (r *MongoResourceRepo) Create(resource *models.Resource) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	resource.CreatedAt = now
	resource.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, resource)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// Update modifies an existing resource document.
func (r *MongoResourceRepo) Update(resource *models.Resource) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	resource.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": resource.ID}, bson.M{"$set": resource})
	if err != nil {
		return fmt.Errorf("failed to update resource with id %s: %w", resource.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found", resource.ID)
	}
	return nil
}

// Delete removes a resource document by its ID.
func (r *MongoResourceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete resource with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("resource with id %s not found", id)
	}
	return nil
}
