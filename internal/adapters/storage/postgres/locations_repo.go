package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/ports/storage"
)

type LocationsRepo struct {
	db *sql.DB
}

func NewLocationsRepo(db *sql.DB) *LocationsRepo {
	return &LocationsRepo{db: db}
}

type geoJSONPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

func (r *LocationsRepo) Insert(ctx context.Context, l locations.Location) (locations.Location, error) {
	region, err := json.Marshal(geoJSONPolygon{Type: "Polygon", Coordinates: l.Region.Coordinates()})
	if err != nil {
		return locations.Location{}, fmt.Errorf("encode region: %w", err)
	}
	if l.Animals == nil {
		l.Animals = []animals.Stub{}
	}
	roster, err := json.Marshal(l.Animals)
	if err != nil {
		return locations.Location{}, fmt.Errorf("encode roster: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO special_locations (name, region, animals)
		VALUES ($1, ST_SetSRID(ST_GeomFromGeoJSON($2), 4326)::geography, $3)
	`, l.Name, string(region), roster)
	if err != nil {
		return locations.Location{}, fmt.Errorf("insert location: %w", wrapInsert(err))
	}
	return l, nil
}

const selectLocation = `
	SELECT name, ST_AsGeoJSON(region), animals
	FROM special_locations
`

func (r *LocationsRepo) Get(ctx context.Context, name string) (locations.Location, bool, error) {
	row := r.db.QueryRowContext(ctx, selectLocation+`WHERE name = $1`, name)

	l, err := scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return locations.Location{}, false, nil
	}
	if err != nil {
		return locations.Location{}, false, err
	}
	return l, true, nil
}

func (r *LocationsRepo) Containing(ctx context.Context, p geo.Point) ([]locations.Location, error) {
	rows, err := r.db.QueryContext(ctx, selectLocation+`
		WHERE ST_Covers(region, `+pointSQL(1, 2)+`)
		ORDER BY created_at
	`, p.Lon(), p.Lat())
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	out := make([]locations.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LocationsRepo) FindAnimal(ctx context.Context, location, scientificName string) (animals.Stub, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT a
		FROM special_locations l, jsonb_array_elements(l.animals) a
		WHERE l.name = $1 AND a->>'scientific_name' = $2
		LIMIT 1
	`, location, scientificName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Stub{}, false, nil
	}
	if err != nil {
		return animals.Stub{}, false, fmt.Errorf("find roster animal: %w", err)
	}

	var a animals.Stub
	if err := json.Unmarshal(payload, &a); err != nil {
		return animals.Stub{}, false, fmt.Errorf("decode roster animal: %w", err)
	}
	return a, true, nil
}

func (r *LocationsRepo) PushAnimal(ctx context.Context, location string, a animals.Stub) (storage.UpdateResult, error) {
	entry, err := json.Marshal([]animals.Stub{a})
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("encode roster animal: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE special_locations SET animals = animals || $2::jsonb
		WHERE name = $1
	`, location, entry)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("push roster animal: %w", err)
	}
	n, _ := res.RowsAffected()
	return storage.UpdateResult{Matched: n, Modified: n}, nil
}

// PullAnimal reports matched and modified separately: the location may
// exist without holding the animal.
func (r *LocationsRepo) PullAnimal(ctx context.Context, location, scientificName string) (storage.UpdateResult, error) {
	var res storage.UpdateResult
	err := r.db.QueryRowContext(ctx, `
		WITH target AS (
			SELECT 1 FROM special_locations WHERE name = $1
		), pulled AS (
			UPDATE special_locations
			SET animals = COALESCE((
				SELECT jsonb_agg(a ORDER BY ord)
				FROM jsonb_array_elements(animals) WITH ORDINALITY AS t(a, ord)
				WHERE a->>'scientific_name' <> $2
			), '[]'::jsonb)
			WHERE name = $1
				AND animals @> jsonb_build_array(jsonb_build_object('scientific_name', $2::text))
			RETURNING 1
		)
		SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM pulled)
	`, location, scientificName).Scan(&res.Matched, &res.Modified)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("pull roster animal: %w", err)
	}
	return res, nil
}

func (r *LocationsRepo) Delete(ctx context.Context, name string) (storage.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM special_locations WHERE name = $1`, name)
	if err != nil {
		return storage.DeleteResult{}, fmt.Errorf("delete location: %w", err)
	}
	n, _ := res.RowsAffected()
	return storage.DeleteResult{Deleted: n}, nil
}

func scanLocation(row scanner) (locations.Location, error) {
	var (
		l       locations.Location
		region  string
		payload []byte
	)
	if err := row.Scan(&l.Name, &region, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return locations.Location{}, err
		}
		return locations.Location{}, fmt.Errorf("scan location: %w", err)
	}

	var poly geoJSONPolygon
	if err := json.Unmarshal([]byte(region), &poly); err != nil {
		return locations.Location{}, fmt.Errorf("decode region: %w", err)
	}
	if err := json.Unmarshal(payload, &l.Animals); err != nil {
		return locations.Location{}, fmt.Errorf("decode roster: %w", err)
	}
	l.Region = geo.PolygonFromCoordinates(poly.Coordinates)
	return l, nil
}
