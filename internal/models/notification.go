package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification represents a user notification stored in MongoDB.
// UserID is the recipient; SenderID is the user whose action triggered it.
type Notification struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          string             `json:"user_id" bson:"user_id"`
	SenderID        string             `json:"sender_id" bson:"sender_id"`
	Type            string             `json:"type" bson:"type"` // comment, like, follow
	Message         string             `json:"message" bson:"message"`
	RelatedEntityID string             `json:"related_entity_id" bson:"related_entity_id"`
	Read            bool               `json:"read" bson:"read"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}

// NotificationDTO is the external projection of a Notification with the
// sender's display name and photo resolved at read time.
type NotificationDTO struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	SenderName      string    `json:"senderName,omitempty"`
	SenderPhoto     string    `json:"senderPhoto,omitempty"`
	Type            string    `json:"type"`
	Message         string    `json:"message"`
	RelatedEntityID string    `json:"relatedEntityId"`
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"createdAt"`
}
