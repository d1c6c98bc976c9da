package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"critter-collector/internal/adapters/encyclopedia/wikipedia"
	"critter-collector/internal/adapters/events/natsbus"
	mem "critter-collector/internal/adapters/storage/memory"
	"critter-collector/internal/adapters/storage/mongodb"
	pg "critter-collector/internal/adapters/storage/postgres"
	"critter-collector/internal/adapters/species/mol"
	"critter-collector/internal/domain/animals"
	"critter-collector/internal/domain/locations"
	"critter-collector/internal/domain/players"
	"critter-collector/internal/domain/spawns"
	"critter-collector/internal/platform/config"
	"critter-collector/internal/platform/httpclient"
	"critter-collector/internal/platform/logger"
	"critter-collector/internal/ports/events"
	"critter-collector/internal/ports/species"
	"critter-collector/internal/router"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(newLogger),
	// storage
	fx.Provide(newRepositories),
	// upstreams
	fx.Provide(newSpeciesProvider),
	fx.Provide(newEncyclopedia),
	fx.Provide(newPublisher),
	// http
	fx.Provide(newHandler),
)

func newLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.Log.App,
	})
}

type repositories struct {
	Spawns        spawns.Repository
	SpecialSpawns spawns.Repository
	Locations     locations.Repository
	Players       players.Repository
}

// newRepositories opens the configured store and closes it when the app
// stops.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (repositories, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		db, err := mongodb.Connect(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDatabase)
		if err != nil {
			return repositories{}, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return repositories{}, err
		}
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		}})
		log.Info().Str("database", cfg.Storage.MongoDatabase).Msg("using mongo storage")

		return repositories{
			Spawns:        mongodb.NewSpawnsRepo(db, mongodb.CollectionSpawns, spawns.KindRegular),
			SpecialSpawns: mongodb.NewSpawnsRepo(db, mongodb.CollectionSpecialSpawns, spawns.KindSpecial),
			Locations:     mongodb.NewLocationsRepo(db),
			Players:       mongodb.NewPlayersRepo(db),
		}, nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.Storage.PostgresDSN)
		if err != nil {
			return repositories{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(db, log); err != nil {
			_ = db.Close()
			return repositories{}, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error {
			return db.Close()
		}})
		log.Info().Msg("using postgres storage")

		return repositories{
			Spawns:        pg.NewSpawnsRepo(db, spawns.KindRegular),
			SpecialSpawns: pg.NewSpawnsRepo(db, spawns.KindSpecial),
			Locations:     pg.NewLocationsRepo(db),
			Players:       pg.NewPlayersRepo(db),
		}, nil

	default:
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return repositories{
			Spawns:        mem.NewSpawnRepo(),
			SpecialSpawns: mem.NewSpawnRepo(),
			Locations:     mem.NewLocationRepo(),
			Players:       mem.NewPlayerRepo(),
		}, nil
	}
}

func newSpeciesProvider(cfg *config.Config, log zerolog.Logger) (species.Provider, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.Species.BaseURL, cfg.Species.Timeout)
	if err != nil {
		return nil, fmt.Errorf("species client: %w", err)
	}
	return mol.New(hc, mol.Options{
		Radius:       cfg.Species.Radius,
		ExcludedTaxa: cfg.Species.ExcludedTaxa,
		Timeout:      cfg.Species.Timeout,
		Logger:       log.With().Str("component", "species").Logger(),
	}), nil
}

func newEncyclopedia(cfg *config.Config, log zerolog.Logger) animals.Encyclopedia {
	hc := httpclient.New(cfg.Encyclopedia.Timeout)
	if cfg.Encyclopedia.UserAgent != "" {
		hc.UserAgent = cfg.Encyclopedia.UserAgent
	}
	return wikipedia.New(hc, wikipedia.Options{
		Endpoint:          cfg.Encyclopedia.BaseURL,
		ThumbnailSize:     cfg.Encyclopedia.ThumbnailSize,
		RequestsPerSecond: cfg.Encyclopedia.RequestsPerSecond,
		Burst:             cfg.Encyclopedia.Burst,
		Logger:            log.With().Str("component", "encyclopedia").Logger(),
	})
}

// newPublisher connects to NATS when a URL is configured; otherwise events
// are dropped.
func newPublisher(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (events.Publisher, error) {
	if cfg.NATS.URL == "" {
		log.Info().Msg("nats not configured; events disabled")
		return events.Noop(), nil
	}

	nc, err := natsbus.Connect(cfg.NATS.URL, cfg.Log.App, log.With().Str("component", "nats").Logger())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		return nc.Drain()
	}})
	return natsbus.New(nc, cfg.NATS.SubjectPrefix), nil
}

func newHandler(
	cfg *config.Config,
	log zerolog.Logger,
	repos repositories,
	sp species.Provider,
	enc animals.Encyclopedia,
	pub events.Publisher,
) http.Handler {
	return router.NewRouter(router.Options{
		Logger:            log,
		Spawns:            repos.Spawns,
		SpecialSpawns:     repos.SpecialSpawns,
		Locations:         repos.Locations,
		Players:           repos.Players,
		Species:           sp,
		Encyclopedia:      enc,
		LookupTimeout:     cfg.Encyclopedia.Timeout,
		Events:            pub,
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
	})
}

func runServer(lc fx.Lifecycle, cfg *config.Config, handler http.Handler, log zerolog.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
