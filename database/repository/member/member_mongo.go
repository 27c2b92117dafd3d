package memberRepo

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

// MongoMemberRepo implements MemberRepository using MongoDB.
type MongoMemberRepo struct {
	coll *mongo.Collection
}

// NewMongoMemberRepo creates a new instance of MemberRepository using MongoDB.
func NewMongoMemberRepo() MemberRepository {
	repo := &MongoMemberRepo{coll: database.Collection("members")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMemberRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a member by its unique ID.
func (r *MongoMemberRepo) GetByID(id string) (*models.Member, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var member models.Member
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		return nil, fmt.Errorf("failed to fetch member with id %s: %w", id, err)
	}
	return &member, nil
}

// GetByEmail retrieves a member by its email address. Returns nil when no
// member carries the address.
func (r *MongoMemberRepo) GetByEmail(email string) (*models.Member, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var member models.Member
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member with email %s: %w", email, err)
	}
	return &member, nil
}

// GetAll retrieves all members.
func (r *MongoMemberRepo) GetAll() ([]models.Member, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.Member
	for cursor.Next(ctx) {
		var m models.Member
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode member: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}

// WithEmail retrieves members that can actually receive email: the store
// filters out null or empty addresses before the engine sees them.
func (r *MongoMemberRepo) WithEmail(ctx context.Context) ([]models.Member, error) {
	filter := bson.M{"email": bson.M{"$nin": bson.A{nil, ""}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve members with email: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.Member
	for cursor.Next(ctx) {
		var m models.Member
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode member: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}

// Create inserts a new member document.
func (r *MongoMemberRepo) Create(member *models.Member) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// Update modifies an existing member document.
func (r *MongoMemberRepo) Update(member *models.Member) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": member.ID}
	update := bson.M{"$set": member}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update member with id %s: %w", member.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("member with id %s not found", member.ID)
	}
	return nil
}

// Delete removes a member document by its ID.
func (r *MongoMemberRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete member with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("member with id %s not found", id)
	}
	return nil
}
