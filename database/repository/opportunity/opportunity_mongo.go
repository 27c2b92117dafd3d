package opportunityRepo

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

// MongoOpportunityRepo implements OpportunityRepository using MongoDB.
type MongoOpportunityRepo struct {
	coll *mongo.Collection
}

// NewMongoOpportunityRepo creates a new instance of OpportunityRepository using MongoDB.
func NewMongoOpportunityRepo() OpportunityRepository {
	repo := &MongoOpportunityRepo{coll: database.Collection("opportunities")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOpportunityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an opportunity by its unique ID.
func (r *MongoOpportunityRepo) GetByID(id string) (*models.Opportunity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var opp models.Opportunity
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&opp); err != nil {
		return nil, fmt.Errorf("failed to fetch opportunity with id %s: %w", id, err)
	}
	return &opp, nil
}

// GetAll retrieves all opportunities sorted by deadline.
func (r *MongoOpportunityRepo) GetAll() ([]models.Opportunity, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve opportunities: %w", err)
	}
	defer cursor.Close(ctx)

	var opportunities []models.Opportunity
	for cursor.Next(ctx) {
		var o models.Opportunity
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode opportunity: %w", err)
		}
		opportunities = append(opportunities, o)
	}
	return opportunities, nil
}

// Create inserts a new opportunity document.
func (r *MongoOpportunityRepo) Create(opportunity *models.Opportunity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	opportunity.CreatedAt = now
	opportunity.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, opportunity)
	if err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}
	return nil
}

// Update modifies an existing opportunity document.
func (r *MongoOpportunityRepo) Update(opportunity *models.Opportunity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opportunity.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": opportunity.ID}, bson.M{"$set": opportunity})
	if err != nil {
		return fmt.Errorf("failed to update opportunity with id %s: %w", opportunity.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("opportunity with id %s not found", opportunity.ID)
	}
	return nil
}

// Delete removes an opportunity document by its ID.
func (r *MongoOpportunityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete opportunity with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("opportunity with id %s not found", id)
	}
	return nil
}
