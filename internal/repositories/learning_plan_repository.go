package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/skillsync/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LearningPlanRepository defines the interface for learning plan operations
type LearningPlanRepository interface {
	CreatePlan(ctx context.Context, plan *models.LearningPlan) error
	GetPlanByID(ctx context.Context, id string) (*models.LearningPlan, error)
	GetPlansByUserID(ctx context.Context, userID string) ([]models.LearningPlan, error)
	UpdatePlan(ctx context.Context, id string, plan *models.LearningPlan) error
	DeletePlan(ctx context.Context, id string) error
}

// MongoLearningPlanRepository implements LearningPlanRepository for MongoDB
type MongoLearningPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoLearningPlanRepository creates a new MongoLearningPlanRepository
func NewMongoLearningPlanRepository(db *mongo.Database) *MongoLearningPlanRepository {
	return &MongoLearningPlanRepository{collection: db.Collection("learningplans")}
}

// CreatePlan creates a new learning plan in MongoDB
func (r *MongoLearningPlanRepository) CreatePlan(ctx context.Context, plan *models.LearningPlan) error {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// GetPlanByID retrieves a learning plan by ID from MongoDB
func (r *MongoLearningPlanRepository) GetPlanByID(ctx context.Context, id string) (*models.LearningPlan, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid learning plan ID format: %w", err)
	}

	var plan models.LearningPlan
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetPlansByUserID retrieves a user's learning plans, most recent first
func (r *MongoLearningPlanRepository) GetPlansByUserID(ctx context.Context, userID string) ([]models.LearningPlan, error) {
	var plans []models.LearningPlan
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// UpdatePlan updates an existing learning plan in MongoDB
func (r *MongoLearningPlanRepository) UpdatePlan(ctx context.Context, id string, plan *models.LearningPlan) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid learning plan ID format: %w", err)
	}

	plan.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        plan.Name,
			"description": plan.Description,
			"topics":      plan.Topics,
			"resources":   plan.Resources,
			"updated_at":  plan.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlan deletes a learning plan by ID from MongoDB
func (r *MongoLearningPlanRepository) DeletePlan(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid learning plan ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
