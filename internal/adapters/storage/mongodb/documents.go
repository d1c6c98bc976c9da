package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/domain/players"
	"critter-collector/internal/domain/spawns"
)

// GeoJSON geometries. Stored as GeoJSON rather than legacy pairs so that
// $maxDistance is in meters.
type pointDoc struct {
	Type        string    `bson:"type"` // always "Point"
	Coordinates []float64 `bson:"coordinates"`
}

type polygonDoc struct {
	Type        string        `bson:"type"` // always "Polygon"
	Coordinates [][][]float64 `bson:"coordinates"`
}

func toPoint(p geo.Point) pointDoc {
	return pointDoc{Type: "Point", Coordinates: []float64{p.Lon(), p.Lat()}}
}

func (d pointDoc) point() geo.Point {
	if len(d.Coordinates) < 2 {
		return geo.Point{}
	}
	return geo.NewPoint(d.Coordinates[0], d.Coordinates[1])
}

type spawnDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Location    string             `bson:"location,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	Coordinates pointDoc           `bson:"coordinates"`
	Animals     []animals.Enriched `bson:"animals"`
}

func toSpawnDoc(s spawns.Spawn) spawnDoc {
	d := spawnDoc{
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
		Coordinates: toPoint(s.Coordinates),
		Animals:     s.Animals,
	}
	if d.Animals == nil {
		d.Animals = []animals.Enriched{}
	}
	return d
}

func (d spawnDoc) spawn(kind spawns.Kind) spawns.Spawn {
	return spawns.Spawn{
		ID:          d.ID.Hex(),
		Kind:        kind,
		Location:    d.Location,
		CreatedAt:   d.CreatedAt.UTC(),
		Coordinates: d.Coordinates.point(),
		Animals:     d.Animals,
	}
}

type locationDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Region  polygonDoc         `bson:"region"`
	Animals []animals.Stub     `bson:"animals"`
}

func toLocationDoc(l locations.Location) locationDoc {
	d := locationDoc{
		Name:    l.Name,
		Region:  polygonDoc{Type: "Polygon", Coordinates: l.Region.Coordinates()},
		Animals: l.Animals,
	}
	if d.Animals == nil {
		d.Animals = []animals.Stub{}
	}
	return d
}

func (d locationDoc) location() locations.Location {
	return locations.Location{
		Name:    d.Name,
		Region:  geo.PolygonFromCoordinates(d.Region.Coordinates),
		Animals: d.Animals,
	}
}

type profileDoc struct {
	ID         primitive.ObjectID        `bson:"_id,omitempty"`
	UserName   string                    `bson:"user_name"`
	UserEmail  string                    `bson:"user_email"`
	Collection []players.CollectedAnimal `bson:"collection"`
}

func toProfileDoc(p players.Profile) profileDoc {
	d := profileDoc{
		UserName:   p.UserName,
		UserEmail:  p.UserEmail,
		Collection: p.Collection,
	}
	if d.Collection == nil {
		d.Collection = []players.CollectedAnimal{}
	}
	return d
}

func (d profileDoc) profile() players.Profile {
	return players.Profile{
		UserName:   d.UserName,
		UserEmail:  d.UserEmail,
		Collection: d.Collection,
	}
}
