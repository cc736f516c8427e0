package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Lister is the read side of the facade that ListOrEmpty wraps.
type Lister interface {
	List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
}

// ListOrEmpty applies the search availability policy: any failure from the
// underlying list call degrades to an empty result instead of an error, so
// an unreachable store reads as "no matching listings". The swallowed error
// is logged so outages remain visible in the process log.
func ListOrEmpty(ctx context.Context, l Lister, collection string, filter bson.M, log *zap.Logger) []bson.M {
	docs, err := l.List(ctx, collection, filter)
	if err != nil {
		log.Warn("list degraded to empty result",
			zap.String("collection", collection),
			zap.Error(err))
		return []bson.M{}
	}
	if docs == nil {
		return []bson.M{}
	}
	return docs
}
