//go:build integration

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/geo"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/domain/players"
	"critter-collector/internal/domain/spawns"
)

const mongoPort = "27017/tcp"

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{mongoPort},
			WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start mongo container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, mongoPort)
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}

	db, err := Connect(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "critter-collector-test")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return db
}

func TestMongo_Repositories(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()

	t.Run("spawns nearest first", func(t *testing.T) {
		repo := NewSpawnsRepo(db, CollectionSpawns, spawns.KindRegular)
		center := geo.NewPoint(-82.3615, 29.6435)

		far, err := repo.Insert(ctx, spawns.Spawn{Coordinates: geo.NewPoint(-82.3515, 29.6435), CreatedAt: time.Now()})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		near, _ := repo.Insert(ctx, spawns.Spawn{Coordinates: geo.NewPoint(-82.3605, 29.6435), CreatedAt: time.Now()})
		_, _ = repo.Insert(ctx, spawns.Spawn{Coordinates: geo.NewPoint(-82.2000, 29.6435), CreatedAt: time.Now()})

		got, err := repo.Nearby(ctx, center, 2000)
		if err != nil {
			t.Fatalf("nearby: %v", err)
		}
		if len(got) != 2 || got[0].ID != near.ID || got[1].ID != far.ID {
			t.Fatalf("unexpected spawns %+v", got)
		}
		if got[0].Kind != spawns.KindRegular {
			t.Fatalf("kind not stamped: %q", got[0].Kind)
		}

		if _, ok, err := repo.GetByID(ctx, "not-an-object-id"); ok || err != nil {
			t.Fatalf("invalid id: ok=%v err=%v", ok, err)
		}
	})

	t.Run("locations", func(t *testing.T) {
		repo := NewLocationsRepo(db)
		square := geo.PolygonFromCoordinates([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}})
		heron := animals.Stub{CommonName: "Great blue heron", ScientificName: "Ardea herodias"}

		if _, err := repo.Insert(ctx, locations.Location{Name: "Square", Region: square}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if _, err := repo.Insert(ctx, locations.Location{Name: "Square", Region: square}); !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}

		in, err := repo.Containing(ctx, geo.NewPoint(0.5, 0.5))
		if err != nil || len(in) != 1 {
			t.Fatalf("containing: %v %v", in, err)
		}

		if res, _ := repo.PushAnimal(ctx, "Square", heron); !res.Changed() {
			t.Fatalf("push: %+v", res)
		}
		if a, ok, _ := repo.FindAnimal(ctx, "Square", heron.ScientificName); !ok || a != heron {
			t.Fatalf("find animal: %+v ok=%v", a, ok)
		}
		if res, _ := repo.PullAnimal(ctx, "Square", heron.ScientificName); !res.Changed() {
			t.Fatalf("pull: %+v", res)
		}
		if res, _ := repo.Delete(ctx, "Square"); res.Deleted != 1 {
			t.Fatalf("delete: %+v", res)
		}
	})

	t.Run("players", func(t *testing.T) {
		repo := NewPlayersRepo(db)
		pika := players.CollectedAnimal{CommonName: "Pikachu", ScientificName: "Electrus murinus", Count: 1}

		if _, err := repo.Insert(ctx, players.Profile{UserName: "ash", UserEmail: "ash@example.com"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if res, _ := repo.IncrementAnimal(ctx, "ash", pika.CommonName, pika.ScientificName); !res.NotFound() {
			t.Fatalf("increment without entry matched: %+v", res)
		}
		if res, _ := repo.PushAnimal(ctx, "ash", pika); !res.Changed() {
			t.Fatalf("push: %+v", res)
		}
		if res, _ := repo.IncrementAnimal(ctx, "ash", pika.CommonName, pika.ScientificName); !res.Changed() {
			t.Fatalf("increment: %+v", res)
		}
		a, ok, err := repo.FindAnimal(ctx, "ash", pika.CommonName, pika.ScientificName)
		if err != nil || !ok || a.Count != 2 {
			t.Fatalf("find: %+v ok=%v err=%v", a, ok, err)
		}

		if res, _ := repo.UpdateEmail(ctx, "ash", "ash@example.com"); res.Changed() {
			t.Fatalf("same email should not modify: %+v", res)
		}
	})
}
