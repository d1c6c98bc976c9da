package species

import (
	"context"

	"critter-collector/internal/domain/animals"
)

// Provider lists the species recorded near a coordinate, already filtered
// by the configured taxon exclusion list.
//
// Errors are propagated as-is: a spawn cannot be built without species data.
type Provider interface {
	Nearby(ctx context.Context, longitude, latitude float64) ([]animals.Stub, error)
}
