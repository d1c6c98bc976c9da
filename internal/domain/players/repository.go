package players

import (
	"context"

	"critter-collector/internal/ports/storage"
)

type Repository interface {
	Insert(ctx context.Context, p Profile) (Profile, error)
	Get(ctx context.Context, userName string) (p Profile, ok bool, err error)
	UpdateEmail(ctx context.Context, userName, email string) (storage.UpdateResult, error)
	Delete(ctx context.Context, userName string) (storage.DeleteResult, error)

	FindAnimal(ctx context.Context, userName, commonName, scientificName string) (a CollectedAnimal, ok bool, err error)
	// PushAnimal appends a new collection entry.
	PushAnimal(ctx context.Context, userName string, a CollectedAnimal) (storage.UpdateResult, error)
	// IncrementAnimal adds one to the count of an existing entry.
	IncrementAnimal(ctx context.Context, userName, commonName, scientificName string) (storage.UpdateResult, error)
}
