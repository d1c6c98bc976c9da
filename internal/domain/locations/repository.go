package locations

import (
	"context"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/ports/storage"
)

// Repository is the special-location part of the persistence gateway.
// "Not found" is reported through ok flags and result counts, never as an
// error.
type Repository interface {
	Insert(ctx context.Context, l Location) (Location, error)
	Get(ctx context.Context, name string) (l Location, ok bool, err error)
	// Containing returns every location whose region contains p, in store
	// order.
	Containing(ctx context.Context, p geo.Point) ([]Location, error)
	FindAnimal(ctx context.Context, location, scientificName string) (a animals.Stub, ok bool, err error)
	PushAnimal(ctx context.Context, location string, a animals.Stub) (storage.UpdateResult, error)
	PullAnimal(ctx context.Context, location, scientificName string) (storage.UpdateResult, error)
	Delete(ctx context.Context, name string) (storage.DeleteResult, error)
}
