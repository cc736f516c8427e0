package filters

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"RealEstateBackend/models"
)

// Fields searched by the free-text query, combined with $or.
var searchFields = []string{"title", "description", "city", "state"}

// Build translates search criteria into a MongoDB filter document. Absent
// criteria contribute nothing, so empty criteria produce an empty document
// that matches every property in the collection.
func Build(criteria models.FilterCriteria) bson.M {
	query := bson.M{}

	if criteria.City != nil {
		query["city"] = bson.M{"$regex": regexp.QuoteMeta(*criteria.City), "$options": "i"}
	}
	if criteria.PropertyType != nil {
		query["property_type"] = bson.M{"$regex": "^" + regexp.QuoteMeta(*criteria.PropertyType) + "$", "$options": "i"}
	}
	if criteria.Featured != nil {
		query["featured"] = *criteria.Featured
	}

	price := bson.M{}
	if criteria.MinPrice != nil {
		price["$gte"] = *criteria.MinPrice
	}
	if criteria.MaxPrice != nil {
		price["$lte"] = *criteria.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if criteria.Bedrooms != nil {
		query["bedrooms"] = bson.M{"$gte": *criteria.Bedrooms}
	}
	if criteria.Bathrooms != nil {
		query["bathrooms"] = bson.M{"$gte": *criteria.Bathrooms}
	}

	if criteria.Query != nil {
		or := make([]bson.M, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: bson.M{"$regex": regexp.QuoteMeta(*criteria.Query), "$options": "i"}})
		}
		query["$or"] = or
	}

	return query
}
