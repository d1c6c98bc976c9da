package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/ports/storage"
)

var ErrDuplicateKey = errors.New("duplicate key")

type locationRepo struct {
	mu     sync.RWMutex
	byName map[string]locations.Location
	order  []string
}

func NewLocationRepo() locations.Repository {
	return &locationRepo{
		byName: make(map[string]locations.Location),
	}
}

func (r *locationRepo) Insert(ctx context.Context, l locations.Location) (locations.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.Name) == "" {
		return locations.Location{}, errors.New("location name required")
	}
	if _, exists := r.byName[l.Name]; exists {
		return locations.Location{}, ErrDuplicateKey
	}
	l.Animals = slices.Clone(l.Animals)
	r.byName[l.Name] = l
	r.order = append(r.order, l.Name)
	return copyLocation(l), nil
}

func (r *locationRepo) Get(ctx context.Context, name string) (locations.Location, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byName[name]
	if !ok {
		return locations.Location{}, false, nil
	}
	return copyLocation(l), true, nil
}

func (r *locationRepo) Containing(ctx context.Context, p geo.Point) ([]locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]locations.Location, 0)
	for _, name := range r.order {
		if l := r.byName[name]; l.Region.Contains(p) {
			out = append(out, copyLocation(l))
		}
	}
	return out, nil
}

func (r *locationRepo) FindAnimal(ctx context.Context, location, scientificName string) (animals.Stub, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byName[location].Animals {
		if a.ScientificName == scientificName {
			return a, true, nil
		}
	}
	return animals.Stub{}, false, nil
}

func (r *locationRepo) PushAnimal(ctx context.Context, location string, a animals.Stub) (storage.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byName[location]
	if !ok {
		return storage.UpdateResult{}, nil
	}
	l.Animals = append(l.Animals, a)
	r.byName[location] = l
	return storage.UpdateResult{Matched: 1, Modified: 1}, nil
}

// PullAnimal removes every roster entry with that scientific name.
func (r *locationRepo) PullAnimal(ctx context.Context, location, scientificName string) (storage.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byName[location]
	if !ok {
		return storage.UpdateResult{}, nil
	}
	before := len(l.Animals)
	l.Animals = slices.DeleteFunc(l.Animals, func(a animals.Stub) bool {
		return a.ScientificName == scientificName
	})
	r.byName[location] = l

	res := storage.UpdateResult{Matched: 1}
	if len(l.Animals) != before {
		res.Modified = 1
	}
	return res, nil
}

func (r *locationRepo) Delete(ctx context.Context, name string) (storage.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return storage.DeleteResult{}, nil
	}
	delete(r.byName, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return storage.DeleteResult{Deleted: 1}, nil
}

func copyLocation(l locations.Location) locations.Location {
	l.Animals = slices.Clone(l.Animals)
	return l
}
