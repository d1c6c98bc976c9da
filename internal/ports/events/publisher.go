package events

import (
	"context"
	"time"
)

const (
	SubjectSpawnCreated = "spawn.created"
	SubjectPlayerCaught = "player.caught"
)

// SpawnCreated is emitted once a spawn or special spawn has been stored.
type SpawnCreated struct {
	SpawnID   string    `json:"spawn_id"`
	Kind      string    `json:"kind"` // regular | special
	Location  string    `json:"location,omitempty"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Animals   int       `json:"animals"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerCaught is emitted when a player adds an animal to their box.
type PlayerCaught struct {
	UserName       string    `json:"user_name"`
	CommonName     string    `json:"common_name"`
	ScientificName string    `json:"scientific_name"`
	Count          int       `json:"count"`
	CaughtAt       time.Time `json:"caught_at"`
}

// Publisher delivers domain events. Delivery is best-effort; callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

type noop struct{}

// Noop discards every event. Used when no broker is configured.
func Noop() Publisher { return noop{} }

func (noop) Publish(context.Context, string, any) error { return nil }
