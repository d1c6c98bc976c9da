package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "critter-collector/docs"
	mem "critter-collector/internal/adapters/storage/memory"
	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/domain/players"
	"critter-collector/internal/domain/spawns"
	"critter-collector/internal/middleware"
	"critter-collector/internal/ports/events"
	"critter-collector/internal/ports/species"
)

// ErrSpeciesNotConfigured is returned by spawn creation when the router was
// built without a species provider.
var ErrSpeciesNotConfigured = errors.New("species provider not configured")

// Options wires the router. Every dependency is optional: missing
// repositories fall back to in-memory stores, a missing encyclopedia makes
// every lookup a miss and a missing species provider fails spawn creation.
type Options struct {
	Logger zerolog.Logger

	Spawns        spawns.Repository
	SpecialSpawns spawns.Repository
	Locations     locations.Repository
	Players       players.Repository

	Species       species.Provider
	Encyclopedia  animals.Encyclopedia
	LookupTimeout time.Duration
	Sampler       *animals.Sampler
	Events        events.Publisher

	CORSOrigins       []string
	RateLimitRequests int // 0 disables rate limiting
	RateLimitWindow   time.Duration
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if opts.Spawns == nil {
		opts.Spawns = mem.NewSpawnRepo()
	}
	if opts.SpecialSpawns == nil {
		opts.SpecialSpawns = mem.NewSpawnRepo()
	}
	if opts.Locations == nil {
		opts.Locations = mem.NewLocationRepo()
	}
	if opts.Players == nil {
		opts.Players = mem.NewPlayerRepo()
	}
	if opts.Species == nil {
		opts.Species = noSpecies{}
	}
	if opts.Encyclopedia == nil {
		opts.Encyclopedia = noEncyclopedia{}
	}

	enricher := animals.NewEnricher(opts.Encyclopedia, opts.LookupTimeout)

	// Services
	locationsSvc := locations.NewService(opts.Locations)
	spawnsSvc := spawns.NewService(spawns.Deps{
		Spawns:   opts.Spawns,
		Special:  opts.SpecialSpawns,
		Species:  opts.Species,
		Roster:   locationsSvc,
		Sampler:  opts.Sampler,
		Enricher: enricher,
		Events:   opts.Events,
	})
	playersSvc := players.NewService(opts.Players, enricher, opts.Events)

	// API routes, rate limited per client IP
	r.Group(func(api chi.Router) {
		if opts.RateLimitRequests > 0 {
			window := opts.RateLimitWindow
			if window <= 0 {
				window = time.Minute
			}
			api.Use(httprate.Limit(opts.RateLimitRequests, window, httprate.WithKeyFuncs(httprate.KeyByIP)))
		}

		spawns.RegisterRoutes(api, spawnsSvc)
		locations.RegisterRoutes(api, locationsSvc)
		players.RegisterRoutes(api, playersSvc)
	})

	return r
}

type noSpecies struct{}

func (noSpecies) Nearby(context.Context, float64, float64) ([]animals.Stub, error) {
	return nil, ErrSpeciesNotConfigured
}

type noEncyclopedia struct{}

func (noEncyclopedia) Lookup(context.Context, string) (animals.Enrichment, bool) {
	return animals.Enrichment{}, false
}
