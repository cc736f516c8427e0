package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"RealEstateBackend/config"
)

var (
	ErrInvalidID   = errors.New("invalid document id")
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("store unavailable")
	ErrWrite       = errors.New("write failed")
)

// Store wraps the process-wide database handle. It is constructed once at
// startup and shared read-only by every controller.
type Store struct {
	db  *mongo.Database
	log *zap.Logger
}

func Connect(ctx context.Context, cfg config.Config, log *zap.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Store{db: client.Database(cfg.MongoDatabase), log: log}, nil
}

func (s *Store) Name() string {
	return s.db.Name()
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// List executes a filter against a collection and drains the cursor into
// raw documents. Unlike ListOrEmpty it reports failures to the caller.
func (s *Store) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)
	var docs []bson.M
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return docs, nil
}

// GetByID fetches one document by its identity token. Point lookups report
// missingness precisely: ErrInvalidID for a malformed token, ErrNotFound
// for a well-formed token with no document behind it.
func (s *Store) GetByID(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, lookupError(err, id)
	}
	return doc, nil
}

func lookupError(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (s *Store) Create(ctx context.Context, collection string, document interface{}) (primitive.ObjectID, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return primitive.NilObjectID, writeError(err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, nil
	}
	return oid, nil
}

// writeError separates reachability failures from rejected writes.
func writeError(err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrWrite, err)
}

func (s *Store) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return names, nil
}
