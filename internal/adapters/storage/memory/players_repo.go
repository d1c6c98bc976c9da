package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"critter-collector/internal/domain/players"
	"critter-collector/internal/ports/storage"
)

type playerRepo struct {
	mu     sync.RWMutex
	byName map[string]players.Profile
}

func NewPlayerRepo() players.Repository {
	return &playerRepo{
		byName: make(map[string]players.Profile),
	}
}

func (r *playerRepo) Insert(ctx context.Context, p players.Profile) (players.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.UserName) == "" {
		return players.Profile{}, errors.New("user name required")
	}
	if _, exists := r.byName[p.UserName]; exists {
		return players.Profile{}, ErrDuplicateKey
	}
	p.Collection = slices.Clone(p.Collection)
	r.byName[p.UserName] = p
	return copyProfile(p), nil
}

func (r *playerRepo) Get(ctx context.Context, userName string) (players.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[userName]
	if !ok {
		return players.Profile{}, false, nil
	}
	return copyProfile(p), true, nil
}

func (r *playerRepo) UpdateEmail(ctx context.Context, userName, email string) (storage.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byName[userName]
	if !ok {
		return storage.UpdateResult{}, nil
	}
	if p.UserEmail == email {
		return storage.UpdateResult{Matched: 1}, nil
	}
	p.UserEmail = email
	r.byName[userName] = p
	return storage.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *playerRepo) Delete(ctx context.Context, userName string) (storage.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[userName]; !ok {
		return storage.DeleteResult{}, nil
	}
	delete(r.byName, userName)
	return storage.DeleteResult{Deleted: 1}, nil
}

func (r *playerRepo) FindAnimal(ctx context.Context, userName, commonName, scientificName string) (players.CollectedAnimal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.byName[userName]
	if i := indexAnimal(p.Collection, commonName, scientificName); i >= 0 {
		return p.Collection[i], true, nil
	}
	return players.CollectedAnimal{}, false, nil
}

func (r *playerRepo) PushAnimal(ctx context.Context, userName string, a players.CollectedAnimal) (storage.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byName[userName]
	if !ok {
		return storage.UpdateResult{}, nil
	}
	p.Collection = append(p.Collection, a)
	r.byName[userName] = p
	return storage.UpdateResult{Matched: 1, Modified: 1}, nil
}

// IncrementAnimal only matches a profile that already holds the entry.
func (r *playerRepo) IncrementAnimal(ctx context.Context, userName, commonName, scientificName string) (storage.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byName[userName]
	if !ok {
		return storage.UpdateResult{}, nil
	}
	i := indexAnimal(p.Collection, commonName, scientificName)
	if i < 0 {
		return storage.UpdateResult{}, nil
	}
	p.Collection[i].Count++
	return storage.UpdateResult{Matched: 1, Modified: 1}, nil
}

func indexAnimal(coll []players.CollectedAnimal, commonName, scientificName string) int {
	return slices.IndexFunc(coll, func(a players.CollectedAnimal) bool {
		return a.CommonName == commonName && a.ScientificName == scientificName
	})
}

func copyProfile(p players.Profile) players.Profile {
	p.Collection = slices.Clone(p.Collection)
	return p
}
