package spawns

import (
	"context"

	"critter-collector/internal/domain/geo"
)

// Repository stores one kind of spawn. Regular and special spawns live in
// separate repositories with the same contract.
type Repository interface {
	// Insert stores s and returns it with its generated ID.
	Insert(ctx context.Context, s Spawn) (Spawn, error)
	// Nearby returns spawns within maxDistance meters of center, nearest first.
	Nearby(ctx context.Context, center geo.Point, maxDistance float64) ([]Spawn, error)
	// GetByID reports ok=false when no spawn has that id.
	GetByID(ctx context.Context, id string) (s Spawn, ok bool, err error)
}
