package spawns

import (
	"time"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
)

// Kind tells regular spawns (live species data) from special spawns
// (a special location's roster).
type Kind string

const (
	KindRegular Kind = "regular"
	KindSpecial Kind = "special"
)

// Spawn is a geolocated bundle of at most animals.MaxPerSpawn animals.
// It is immutable once stored.
type Spawn struct {
	ID          string
	Kind        Kind
	Location    string // special location name; empty for regular spawns
	CreatedAt   time.Time
	Coordinates geo.Point
	Animals     []animals.Enriched
}
