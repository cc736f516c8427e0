package utils

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDoc maps a raw stored document to its external representation:
// the store identity becomes a string "id" field and timestamps become
// RFC 3339 strings. Everything else passes through unchanged.
func SerializeDoc(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		if key == "_id" {
			out["id"] = idString(value)
			continue
		}
		out[key] = formatValue(value)
	}
	return out
}

func idString(value interface{}) string {
	if oid, ok := value.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", value)
}

func formatValue(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339)
	default:
		return value
	}
}
