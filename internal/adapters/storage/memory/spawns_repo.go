package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/spawns"
)

// spawnRepo keeps one kind of spawn. Regular and special spawns get
// separate instances.
type spawnRepo struct {
	mu    sync.RWMutex
	byID  map[string]spawns.Spawn
	order []string
}

func NewSpawnRepo() spawns.Repository {
	return &spawnRepo{
		byID: make(map[string]spawns.Spawn),
	}
}

func (r *spawnRepo) Insert(ctx context.Context, s spawns.Spawn) (spawns.Spawn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = uuid.NewString()
	s.Animals = slices.Clone(s.Animals)
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return copySpawn(s), nil
}

func (r *spawnRepo) Nearby(ctx context.Context, center geo.Point, maxDistance float64) ([]spawns.Spawn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type hit struct {
		s spawns.Spawn
		d float64
	}
	hits := make([]hit, 0)
	for _, id := range r.order {
		s := r.byID[id]
		if d := geo.DistanceMeters(center, s.Coordinates); d <= maxDistance {
			hits = append(hits, hit{s: copySpawn(s), d: d})
		}
	}

	// nearest first, insertion order on ties
	slices.SortStableFunc(hits, func(a, b hit) int {
		switch {
		case a.d < b.d:
			return -1
		case a.d > b.d:
			return 1
		}
		return 0
	})

	out := make([]spawns.Spawn, len(hits))
	for i, h := range hits {
		out[i] = h.s
	}
	return out, nil
}

func (r *spawnRepo) GetByID(ctx context.Context, id string) (spawns.Spawn, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return spawns.Spawn{}, false, nil
	}
	return copySpawn(s), true, nil
}

func copySpawn(s spawns.Spawn) spawns.Spawn {
	s.Animals = slices.Clone(s.Animals)
	return s
}
