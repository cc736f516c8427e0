package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Address      string             `bson:"address" json:"address"`
	City         string             `bson:"city" json:"city"`
	State        string             `bson:"state" json:"state"`
	ZipCode      string             `bson:"zip_code" json:"zip_code"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    float64            `bson:"bathrooms" json:"bathrooms"`
	AreaSqFt     float64            `bson:"area_sqft" json:"area_sqft"`
	PropertyType string             `bson:"property_type" json:"property_type"`
	Images       []string           `bson:"images" json:"images"`
	Amenities    []string           `bson:"amenities" json:"amenities"`
	Featured     bool               `bson:"featured" json:"featured"`
	Status       string             `bson:"status" json:"status"`
	ListedAt     time.Time          `bson:"listed_at" json:"listed_at"`
}
