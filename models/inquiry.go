package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Inquiry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Phone      string             `bson:"phone" json:"phone"`
	Message    string             `bson:"message" json:"message" validate:"required"`
	PropertyID string             `bson:"property_id,omitempty" json:"property_id,omitempty"`
}
