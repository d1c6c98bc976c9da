package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/spawns"
)

// SpawnsRepo serves one spawn collection; kind is stamped on every read.
type SpawnsRepo struct {
	coll *mongo.Collection
	kind spawns.Kind
}

func NewSpawnsRepo(db *mongo.Database, collection string, kind spawns.Kind) *SpawnsRepo {
	return &SpawnsRepo{coll: db.Collection(collection), kind: kind}
}

func (r *SpawnsRepo) Insert(ctx context.Context, s spawns.Spawn) (spawns.Spawn, error) {
	doc := toSpawnDoc(s)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return spawns.Spawn{}, fmt.Errorf("insert spawn: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return spawns.Spawn{}, fmt.Errorf("insert spawn: unexpected id type %T", res.InsertedID)
	}
	doc.ID = id
	return doc.spawn(r.kind), nil
}

// Nearby relies on $near, which already sorts nearest first.
func (r *SpawnsRepo) Nearby(ctx context.Context, center geo.Point, maxDistance float64) ([]spawns.Spawn, error) {
	filter := bson.M{
		"coordinates": bson.M{
			"$near": bson.M{
				"$geometry":    toPoint(center),
				"$maxDistance": maxDistance,
			},
		},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find spawns: %w", err)
	}
	var docs []spawnDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode spawns: %w", err)
	}

	out := make([]spawns.Spawn, len(docs))
	for i, d := range docs {
		out[i] = d.spawn(r.kind)
	}
	return out, nil
}

func (r *SpawnsRepo) GetByID(ctx context.Context, id string) (spawns.Spawn, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// not an ObjectID, so no document can have it
		return spawns.Spawn{}, false, nil
	}

	var doc spawnDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return spawns.Spawn{}, false, nil
	}
	if err != nil {
		return spawns.Spawn{}, false, fmt.Errorf("get spawn: %w", err)
	}
	return doc.spawn(r.kind), true, nil
}
