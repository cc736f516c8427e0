package seed

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"RealEstateBackend/models"
)

const propertyCollection = "property"

type propertyStore interface {
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	Create(ctx context.Context, collection string, document interface{}) (primitive.ObjectID, error)
}

type Seeder struct {
	store propertyStore
	log   *zap.Logger
}

func NewSeeder(store propertyStore, log *zap.Logger) *Seeder {
	return &Seeder{store: store, log: log}
}

// Run populates the property collection with the sample listings, but only
// while the collection is empty; once any document exists it is a no-op.
// Individual insert failures are skipped, so the returned count may be
// lower than the sample set size.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx, propertyCollection, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, property := range SampleProperties() {
		if _, err := s.store.Create(ctx, propertyCollection, property); err != nil {
			s.log.Warn("skipping sample property",
				zap.String("title", property.Title),
				zap.Error(err))
			continue
		}
		inserted++
	}
	return inserted, nil
}

// SampleProperties returns the fixed sample listings inserted on first seed.
func SampleProperties() []models.Property {
	now := time.Now().UTC()
	return []models.Property{
		{
			Title:        "Modern Family House",
			Description:  "Spacious 4-bedroom home with open floor plan and large backyard.",
			Price:        549000,
			Address:      "123 Maple Street",
			City:         "Springfield",
			State:        "IL",
			ZipCode:      "62704",
			Bedrooms:     4,
			Bathrooms:    2.5,
			AreaSqFt:     2400,
			PropertyType: "House",
			Images: []string{
				"https://images.unsplash.com/photo-1572120360610-d971b9d7767c",
				"https://images.unsplash.com/photo-1560518883-ce09059eeffa",
			},
			Amenities: []string{"Garage", "Garden", "Central Air"},
			Featured:  true,
			Status:    "For Sale",
			ListedAt:  now,
		},
		{
			Title:        "Downtown City Apartment",
			Description:  "Stylish 2-bed apartment close to shops, cafes, and public transit.",
			Price:        329000,
			Address:      "456 Oak Avenue, Apt 12B",
			City:         "Metro City",
			State:        "NY",
			ZipCode:      "10001",
			Bedrooms:     2,
			Bathrooms:    1.0,
			AreaSqFt:     900,
			PropertyType: "Apartment",
			Images: []string{
				"https://images.unsplash.com/photo-1505693416388-ac5ce068fe85",
				"https://images.unsplash.com/photo-1501183638710-841dd1904471",
			},
			Amenities: []string{"Elevator", "Doorman", "Gym"},
			Featured:  true,
			Status:    "For Sale",
			ListedAt:  now,
		},
		{
			Title:        "Cozy Suburban Condo",
			Description:  "Bright 1-bedroom condo with balcony and community pool.",
			Price:        189000,
			Address:      "789 Pine Lane, Unit 305",
			City:         "Lakeside",
			State:        "CA",
			ZipCode:      "92040",
			Bedrooms:     1,
			Bathrooms:    1.0,
			AreaSqFt:     650,
			PropertyType: "Condo",
			Images: []string{
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750",
			},
			Amenities: []string{"Pool", "Clubhouse"},
			Featured:  false,
			Status:    "For Sale",
			ListedAt:  now,
		},
	}
}
