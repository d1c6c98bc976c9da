package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/spawns"
)

// SpawnsRepo serves one kind of spawn out of the shared spawn_points table.
type SpawnsRepo struct {
	db   *sql.DB
	kind spawns.Kind
}

func NewSpawnsRepo(db *sql.DB, kind spawns.Kind) *SpawnsRepo {
	return &SpawnsRepo{db: db, kind: kind}
}

func (r *SpawnsRepo) Insert(ctx context.Context, s spawns.Spawn) (spawns.Spawn, error) {
	if s.Animals == nil {
		s.Animals = []animals.Enriched{}
	}
	payload, err := json.Marshal(s.Animals)
	if err != nil {
		return spawns.Spawn{}, fmt.Errorf("encode animals: %w", err)
	}

	s.ID = uuid.NewString()
	s.Kind = r.kind
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO spawn_points (id, kind, location, created_at, coordinates, animals)
		VALUES ($1, $2, $3, $4, `+pointSQL(5, 6)+`, $7)
	`,
		s.ID,
		string(r.kind),
		s.Location,
		s.CreatedAt,
		s.Coordinates.Lon(),
		s.Coordinates.Lat(),
		payload,
	)
	if err != nil {
		return spawns.Spawn{}, fmt.Errorf("insert spawn: %w", err)
	}
	return s, nil
}

func (r *SpawnsRepo) Nearby(ctx context.Context, center geo.Point, maxDistance float64) ([]spawns.Spawn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, location, created_at,
			ST_X(coordinates::geometry), ST_Y(coordinates::geometry),
			animals
		FROM spawn_points
		WHERE kind = $1
			AND ST_DWithin(coordinates, `+pointSQL(2, 3)+`, $4)
		ORDER BY ST_Distance(coordinates, `+pointSQL(2, 3)+`), created_at
	`, string(r.kind), center.Lon(), center.Lat(), maxDistance)
	if err != nil {
		return nil, fmt.Errorf("query spawns: %w", err)
	}
	defer rows.Close()

	out := make([]spawns.Spawn, 0)
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SpawnsRepo) GetByID(ctx context.Context, id string) (spawns.Spawn, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return spawns.Spawn{}, false, nil
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, location, created_at,
			ST_X(coordinates::geometry), ST_Y(coordinates::geometry),
			animals
		FROM spawn_points
		WHERE id = $1 AND kind = $2
	`, id, string(r.kind))

	s, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return spawns.Spawn{}, false, nil
	}
	if err != nil {
		return spawns.Spawn{}, false, err
	}
	return s, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SpawnsRepo) scan(row scanner) (spawns.Spawn, error) {
	var (
		s        spawns.Spawn
		lon, lat float64
		created  time.Time
		payload  []byte
	)
	if err := row.Scan(&s.ID, &s.Location, &created, &lon, &lat, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return spawns.Spawn{}, err
		}
		return spawns.Spawn{}, fmt.Errorf("scan spawn: %w", err)
	}
	if err := json.Unmarshal(payload, &s.Animals); err != nil {
		return spawns.Spawn{}, fmt.Errorf("decode animals: %w", err)
	}
	s.Kind = r.kind
	s.CreatedAt = created.UTC()
	s.Coordinates = geo.NewPoint(lon, lat)
	return s, nil
}
