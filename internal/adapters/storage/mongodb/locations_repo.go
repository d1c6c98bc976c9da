package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/ports/storage"
)

type LocationsRepo struct {
	coll *mongo.Collection
}

func NewLocationsRepo(db *mongo.Database) *LocationsRepo {
	return &LocationsRepo{coll: db.Collection(CollectionLocations)}
}

func (r *LocationsRepo) Insert(ctx context.Context, l locations.Location) (locations.Location, error) {
	doc := toLocationDoc(l)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return locations.Location{}, fmt.Errorf("insert location: %w", wrapInsert(err))
	}
	return doc.location(), nil
}

func (r *LocationsRepo) Get(ctx context.Context, name string) (locations.Location, bool, error) {
	var doc locationDoc
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return locations.Location{}, false, nil
	}
	if err != nil {
		return locations.Location{}, false, fmt.Errorf("get location: %w", err)
	}
	return doc.location(), true, nil
}

func (r *LocationsRepo) Containing(ctx context.Context, p geo.Point) ([]locations.Location, error) {
	filter := bson.M{
		"region": bson.M{
			"$geoIntersects": bson.M{"$geometry": toPoint(p)},
		},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}
	var docs []locationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}

	out := make([]locations.Location, len(docs))
	for i, d := range docs {
		out[i] = d.location()
	}
	return out, nil
}

// FindAnimal projects only the matching roster entry.
func (r *LocationsRepo) FindAnimal(ctx context.Context, location, scientificName string) (animals.Stub, bool, error) {
	filter := bson.M{"name": location, "animals.scientific_name": scientificName}
	opts := options.FindOne().SetProjection(bson.M{"animals.$": 1})

	var doc locationDoc
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return animals.Stub{}, false, nil
	}
	if err != nil {
		return animals.Stub{}, false, fmt.Errorf("find roster animal: %w", err)
	}
	if len(doc.Animals) == 0 {
		return animals.Stub{}, false, nil
	}
	return doc.Animals[0], true, nil
}

func (r *LocationsRepo) PushAnimal(ctx context.Context, location string, a animals.Stub) (storage.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"name": location},
		bson.M{"$push": bson.M{"animals": a}},
	)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("push roster animal: %w", err)
	}
	return updateResult(res), nil
}

func (r *LocationsRepo) PullAnimal(ctx context.Context, location, scientificName string) (storage.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"name": location},
		bson.M{"$pull": bson.M{"animals": bson.M{"scientific_name": scientificName}}},
	)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("pull roster animal: %w", err)
	}
	return updateResult(res), nil
}

func (r *LocationsRepo) Delete(ctx context.Context, name string) (storage.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return storage.DeleteResult{}, fmt.Errorf("delete location: %w", err)
	}
	return storage.DeleteResult{Deleted: res.DeletedCount}, nil
}

func updateResult(res *mongo.UpdateResult) storage.UpdateResult {
	return storage.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}
}
