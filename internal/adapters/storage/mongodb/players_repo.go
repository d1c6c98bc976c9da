package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"critter-collector/internal/domain/players"
	"critter-collector/internal/ports/storage"
)

type PlayersRepo struct {
	coll *mongo.Collection
}

func NewPlayersRepo(db *mongo.Database) *PlayersRepo {
	return &PlayersRepo{coll: db.Collection(CollectionPlayerProfiles)}
}

func (r *PlayersRepo) Insert(ctx context.Context, p players.Profile) (players.Profile, error) {
	doc := toProfileDoc(p)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return players.Profile{}, fmt.Errorf("insert profile: %w", wrapInsert(err))
	}
	return doc.profile(), nil
}

func (r *PlayersRepo) Get(ctx context.Context, userName string) (players.Profile, bool, error) {
	var doc profileDoc
	err := r.coll.FindOne(ctx, bson.M{"user_name": userName}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return players.Profile{}, false, nil
	}
	if err != nil {
		return players.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}
	return doc.profile(), true, nil
}

func (r *PlayersRepo) UpdateEmail(ctx context.Context, userName, email string) (storage.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_name": userName},
		bson.M{"$set": bson.M{"user_email": email}},
	)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("update email: %w", err)
	}
	return updateResult(res), nil
}

func (r *PlayersRepo) Delete(ctx context.Context, userName string) (storage.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_name": userName})
	if err != nil {
		return storage.DeleteResult{}, fmt.Errorf("delete profile: %w", err)
	}
	return storage.DeleteResult{Deleted: res.DeletedCount}, nil
}

func collectionMatch(userName, commonName, scientificName string) bson.M {
	return bson.M{
		"user_name": userName,
		"collection": bson.M{"$elemMatch": bson.M{
			"common_name":     commonName,
			"scientific_name": scientificName,
		}},
	}
}

func (r *PlayersRepo) FindAnimal(ctx context.Context, userName, commonName, scientificName string) (players.CollectedAnimal, bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"collection.$": 1})

	var doc profileDoc
	err := r.coll.FindOne(ctx, collectionMatch(userName, commonName, scientificName), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return players.CollectedAnimal{}, false, nil
	}
	if err != nil {
		return players.CollectedAnimal{}, false, fmt.Errorf("find collected animal: %w", err)
	}
	if len(doc.Collection) == 0 {
		return players.CollectedAnimal{}, false, nil
	}
	return doc.Collection[0], true, nil
}

func (r *PlayersRepo) PushAnimal(ctx context.Context, userName string, a players.CollectedAnimal) (storage.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_name": userName},
		bson.M{"$push": bson.M{"collection": a}},
	)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("push collected animal: %w", err)
	}
	return updateResult(res), nil
}

func (r *PlayersRepo) IncrementAnimal(ctx context.Context, userName, commonName, scientificName string) (storage.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		collectionMatch(userName, commonName, scientificName),
		bson.M{"$inc": bson.M{"collection.$.count": 1}},
	)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("increment collected animal: %w", err)
	}
	return updateResult(res), nil
}
