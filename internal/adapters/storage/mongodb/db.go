package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared with the data already in production.
const (
	CollectionSpawns         = "Spawn-Points"
	CollectionSpecialSpawns  = "Special-Spawn-Points"
	CollectionLocations      = "Special-Locations"
	CollectionPlayerProfiles = "Player-Profiles"
)

var ErrDuplicateKey = errors.New("duplicate key")

// Connect opens a client and checks the primary is reachable.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(database), nil
}

// EnsureIndexes creates the geo and uniqueness indexes the repositories
// rely on. $near needs the 2dsphere index on spawn coordinates.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	geoIndex := func(field string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: field, Value: "2dsphere"}}}
	}
	uniqueIndex := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	indexes := map[string][]mongo.IndexModel{
		CollectionSpawns:         {geoIndex("coordinates")},
		CollectionSpecialSpawns:  {geoIndex("coordinates")},
		CollectionLocations:      {geoIndex("region"), uniqueIndex("name")},
		CollectionPlayerProfiles: {uniqueIndex("user_name")},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

func wrapInsert(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}
	return err
}
