package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LearningPlan represents a user-owned learning plan stored in MongoDB
type LearningPlan struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"user_id" bson:"user_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Topics      []string           `json:"topics" bson:"topics"`
	Resources   []string           `json:"resources" bson:"resources"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateLearningPlanRequest defines the request body for creating a learning plan
type CreateLearningPlanRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"required,min=1,max=1000"`
	Topics      []string `json:"topics" validate:"required,min=1,dive,required"`
	Resources   []string `json:"resources" validate:"required,min=1,dive,required"`
}

// UpdateLearningPlanRequest defines the request body for updating a learning plan
type UpdateLearningPlanRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"required,min=1,max=1000"`
	Topics      []string `json:"topics" validate:"required,min=1,dive,required"`
	Resources   []string `json:"resources" validate:"required,min=1,dive,required"`
}
