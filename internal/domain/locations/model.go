package locations

import (
	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
)

// Location is an operator defined geofence with its own animal roster.
// Name is the unique key. Region is fixed at creation; roster edits never
// touch it.
type Location struct {
	Name    string
	Region  geo.Polygon
	Animals []animals.Stub
}
