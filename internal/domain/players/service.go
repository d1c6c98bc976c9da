package players

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/ports/events"
	"critter-collector/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("player not found")
	ErrPlayerExists = errors.New("player already exists")

	// ErrNotModified: the store matched the profile but changed nothing.
	ErrNotModified = errors.New("player not modified")
)

type Service struct {
	repo     Repository
	enricher *animals.Enricher
	events   events.Publisher
	now      func() time.Time
}

func NewService(repo Repository, enricher *animals.Enricher, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Noop()
	}
	return &Service{
		repo:     repo,
		enricher: enricher,
		events:   pub,
		now:      time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userName string) (Profile, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return Profile{}, ErrInvalidInput
	}
	p, ok, err := s.repo.Get(ctx, userName)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, userName, email string) (Profile, error) {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)
	if userName == "" || email == "" {
		return Profile{}, ErrInvalidInput
	}

	_, exists, err := s.repo.Get(ctx, userName)
	if err != nil {
		return Profile{}, err
	}
	if exists {
		return Profile{}, ErrPlayerExists
	}

	return s.repo.Insert(ctx, Profile{
		UserName:   userName,
		UserEmail:  email,
		Collection: []CollectedAnimal{},
	})
}

func (s *Service) UpdateEmail(ctx context.Context, userName, email string) (storage.UpdateResult, error) {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)
	if userName == "" || email == "" {
		return storage.UpdateResult{}, ErrInvalidInput
	}
	return s.repo.UpdateEmail(ctx, userName, email)
}

func (s *Service) Delete(ctx context.Context, userName string) (storage.DeleteResult, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return storage.DeleteResult{}, ErrInvalidInput
	}
	return s.repo.Delete(ctx, userName)
}

// Box returns the player's collection with encyclopedia data. Animals
// without an entry keep their place with the "no data" placeholder.
func (s *Service) Box(ctx context.Context, userName string) ([]BoxAnimal, error) {
	p, err := s.Get(ctx, userName)
	if err != nil {
		return nil, err
	}

	stubs := make([]animals.Stub, len(p.Collection))
	for i, a := range p.Collection {
		stubs[i] = a.Stub()
	}
	enriched := s.enricher.ForProfile(ctx, stubs)

	out := make([]BoxAnimal, len(enriched))
	for i, e := range enriched {
		out[i] = BoxAnimal{Enriched: e, Count: p.Collection[i].Count}
	}
	return out, nil
}

// Catch records a caught animal: the count of an existing entry is
// incremented, otherwise a new entry with count 1 is appended. The returned
// entry carries the new count.
func (s *Service) Catch(ctx context.Context, userName string, a animals.Stub) (CollectedAnimal, error) {
	userName = strings.TrimSpace(userName)
	a.CommonName = strings.TrimSpace(a.CommonName)
	a.ScientificName = strings.TrimSpace(a.ScientificName)
	if userName == "" || a.CommonName == "" || a.ScientificName == "" {
		return CollectedAnimal{}, ErrInvalidInput
	}

	existing, found, err := s.repo.FindAnimal(ctx, userName, a.CommonName, a.ScientificName)
	if err != nil {
		return CollectedAnimal{}, fmt.Errorf("find animal: %w", err)
	}

	var (
		res    storage.UpdateResult
		caught CollectedAnimal
	)
	if found {
		res, err = s.repo.IncrementAnimal(ctx, userName, a.CommonName, a.ScientificName)
		caught = existing
		caught.Count++
	} else {
		caught = CollectedAnimal{CommonName: a.CommonName, ScientificName: a.ScientificName, Count: 1}
		res, err = s.repo.PushAnimal(ctx, userName, caught)
	}
	if err != nil {
		return CollectedAnimal{}, fmt.Errorf("catch animal: %w", err)
	}
	if res.NotFound() {
		return CollectedAnimal{}, ErrNotFound
	}
	if !res.Changed() {
		return CollectedAnimal{}, ErrNotModified
	}

	err = s.events.Publish(ctx, events.SubjectPlayerCaught, events.PlayerCaught{
		UserName:       userName,
		CommonName:     caught.CommonName,
		ScientificName: caught.ScientificName,
		Count:          caught.Count,
		CaughtAt:       s.now().UTC(),
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("user_name", userName).Msg("publish player.caught")
	}

	return caught, nil
}
