package locations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/ports/storage"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrLocationExists = errors.New("special location already exists")
	ErrAnimalExists   = errors.New("animal already exists at location")
	ErrAnimalMissing  = errors.New("animal does not exist at location")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Find returns the most specific location containing the point: when
// regions nest, the one with the smallest area wins.
func (s *Service) Find(ctx context.Context, longitude, latitude float64) (Location, bool, error) {
	matches, err := s.repo.Containing(ctx, geo.NewPoint(longitude, latitude))
	if err != nil {
		return Location{}, false, err
	}
	if len(matches) == 0 {
		return Location{}, false, nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Region.Area() < matches[j].Region.Area()
	})
	return matches[0], true, nil
}

type CreateInput struct {
	Name    string
	Region  [][][]float64
	Animals []animals.Stub
}

// Create expects Region and Animals to be validated by the caller.
func (s *Service) Create(ctx context.Context, in CreateInput) (Location, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(in.Region) == 0 {
		return Location{}, ErrInvalidInput
	}

	_, exists, err := s.repo.Get(ctx, name)
	if err != nil {
		return Location{}, err
	}
	if exists {
		return Location{}, ErrLocationExists
	}

	roster := make([]animals.Stub, 0, len(in.Animals))
	for _, a := range in.Animals {
		roster = append(roster, animals.Stub{
			CommonName:     strings.TrimSpace(a.CommonName),
			ScientificName: strings.TrimSpace(a.ScientificName),
		})
	}

	return s.repo.Insert(ctx, Location{
		Name:    name,
		Region:  geo.PolygonFromCoordinates(in.Region),
		Animals: roster,
	})
}

func (s *Service) Delete(ctx context.Context, name string) (storage.DeleteResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.DeleteResult{}, ErrInvalidInput
	}
	return s.repo.Delete(ctx, name)
}

// Animals returns the roster of a location. It satisfies spawns.Roster.
func (s *Service) Animals(ctx context.Context, location string) ([]animals.Stub, bool, error) {
	l, ok, err := s.repo.Get(ctx, strings.TrimSpace(location))
	if err != nil || !ok {
		return nil, ok, err
	}
	if l.Animals == nil {
		l.Animals = []animals.Stub{}
	}
	return l.Animals, true, nil
}

// AddAnimal appends a to the roster unless an animal with the same
// scientific name is already there (ErrAnimalExists). A zero Modified
// count means the store did not change, e.g. the location is unknown.
func (s *Service) AddAnimal(ctx context.Context, location string, a animals.Stub) (storage.UpdateResult, error) {
	location = strings.TrimSpace(location)
	a.CommonName = strings.TrimSpace(a.CommonName)
	a.ScientificName = strings.TrimSpace(a.ScientificName)
	if location == "" || a.CommonName == "" || a.ScientificName == "" {
		return storage.UpdateResult{}, ErrInvalidInput
	}

	_, exists, err := s.repo.FindAnimal(ctx, location, a.ScientificName)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("find animal: %w", err)
	}
	if exists {
		return storage.UpdateResult{}, ErrAnimalExists
	}

	return s.repo.PushAnimal(ctx, location, a)
}

// RemoveAnimal pulls the animal with the given scientific name from the
// roster; ErrAnimalMissing when it is not there.
func (s *Service) RemoveAnimal(ctx context.Context, location, scientificName string) (storage.UpdateResult, error) {
	location = strings.TrimSpace(location)
	scientificName = strings.TrimSpace(scientificName)
	if location == "" || scientificName == "" {
		return storage.UpdateResult{}, ErrInvalidInput
	}

	_, exists, err := s.repo.FindAnimal(ctx, location, scientificName)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("find animal: %w", err)
	}
	if !exists {
		return storage.UpdateResult{}, ErrAnimalMissing
	}

	return s.repo.PullAnimal(ctx, location, scientificName)
}
