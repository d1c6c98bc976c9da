package spawns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/platform/metrics"
	"critter-collector/internal/ports/events"
	"critter-collector/internal/ports/species"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("spawn not found")
	ErrLocationNotFound   = errors.New("special location not found")
	ErrSpeciesUnavailable = errors.New("species provider unavailable")
)

// Roster reads a special location's curated animals. ok=false means the
// location does not exist.
type Roster interface {
	Animals(ctx context.Context, location string) (stubs []animals.Stub, ok bool, err error)
}

type Deps struct {
	Spawns   Repository
	Special  Repository
	Species  species.Provider
	Roster   Roster
	Sampler  *animals.Sampler
	Enricher *animals.Enricher
	Events   events.Publisher // optional
}

type Service struct {
	spawns   Repository
	special  Repository
	species  species.Provider
	roster   Roster
	sampler  *animals.Sampler
	enricher *animals.Enricher
	events   events.Publisher
	now      func() time.Time
}

func NewService(d Deps) *Service {
	if d.Sampler == nil {
		d.Sampler = animals.NewSampler(nil)
	}
	if d.Events == nil {
		d.Events = events.Noop()
	}
	return &Service{
		spawns:   d.Spawns,
		special:  d.Special,
		species:  d.Species,
		roster:   d.Roster,
		sampler:  d.Sampler,
		enricher: d.Enricher,
		events:   d.Events,
		now:      time.Now,
	}
}

// CreateSpawn builds a spawn from the species recorded around the point.
// A species provider failure aborts the spawn and is wrapped in
// ErrSpeciesUnavailable.
func (s *Service) CreateSpawn(ctx context.Context, longitude, latitude float64) (Spawn, error) {
	candidates, err := s.species.Nearby(ctx, longitude, latitude)
	if err != nil {
		return Spawn{}, fmt.Errorf("%w: %w", ErrSpeciesUnavailable, err)
	}

	sp := s.assemble(ctx, KindRegular, "", candidates, longitude, latitude)
	stored, err := s.spawns.Insert(ctx, sp)
	if err != nil {
		return Spawn{}, fmt.Errorf("insert spawn: %w", err)
	}

	s.announce(ctx, stored)
	return stored, nil
}

// CreateSpecialSpawn builds a spawn from a special location's roster. The
// roster is operator curated, so no taxon exclusion applies.
func (s *Service) CreateSpecialSpawn(ctx context.Context, location string, longitude, latitude float64) (Spawn, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Spawn{}, ErrInvalidInput
	}

	candidates, ok, err := s.roster.Animals(ctx, location)
	if err != nil {
		return Spawn{}, fmt.Errorf("read roster: %w", err)
	}
	if !ok {
		return Spawn{}, ErrLocationNotFound
	}

	sp := s.assemble(ctx, KindSpecial, location, candidates, longitude, latitude)
	stored, err := s.special.Insert(ctx, sp)
	if err != nil {
		return Spawn{}, fmt.Errorf("insert special spawn: %w", err)
	}

	s.announce(ctx, stored)
	return stored, nil
}

func (s *Service) assemble(ctx context.Context, kind Kind, location string, candidates []animals.Stub, longitude, latitude float64) Spawn {
	picked := s.sampler.Select(candidates)
	enriched := s.enricher.ForSpawn(ctx, picked)

	return Spawn{
		Kind:        kind,
		Location:    location,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond), // stores keep milliseconds
		Coordinates: geo.NewPoint(longitude, latitude),
		Animals:     enriched,
	}
}

func (s *Service) announce(ctx context.Context, sp Spawn) {
	metrics.RecordSpawn(string(sp.Kind), len(sp.Animals))

	err := s.events.Publish(ctx, events.SubjectSpawnCreated, events.SpawnCreated{
		SpawnID:   sp.ID,
		Kind:      string(sp.Kind),
		Location:  sp.Location,
		Longitude: sp.Coordinates.Lon(),
		Latitude:  sp.Coordinates.Lat(),
		Animals:   len(sp.Animals),
		CreatedAt: sp.CreatedAt,
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("spawn_id", sp.ID).Msg("publish spawn.created")
	}
}

// SpawnList returns stored spawns near the point, nearest first. Special
// spawns are not included.
func (s *Service) SpawnList(ctx context.Context, maxDistance, longitude, latitude float64) ([]Spawn, error) {
	return s.spawns.Nearby(ctx, geo.NewPoint(longitude, latitude), maxDistance)
}

func (s *Service) SpecialSpawnList(ctx context.Context, maxDistance, longitude, latitude float64) ([]Spawn, error) {
	return s.special.Nearby(ctx, geo.NewPoint(longitude, latitude), maxDistance)
}

func (s *Service) GetSpawn(ctx context.Context, id string) (Spawn, error) {
	return getByID(ctx, s.spawns, id)
}

func (s *Service) GetSpecialSpawn(ctx context.Context, id string) (Spawn, error) {
	return getByID(ctx, s.special, id)
}

func getByID(ctx context.Context, repo Repository, id string) (Spawn, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Spawn{}, ErrNotFound
	}
	sp, ok, err := repo.GetByID(ctx, id)
	if err != nil {
		return Spawn{}, err
	}
	if !ok {
		return Spawn{}, ErrNotFound
	}
	return sp, nil
}
