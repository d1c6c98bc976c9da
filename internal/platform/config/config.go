package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// ConfigPathEnvVar overrides the yaml file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	Storage      StorageConfig      `koanf:"storage"`
	Species      SpeciesConfig      `koanf:"species"`
	Encyclopedia EncyclopediaConfig `koanf:"encyclopedia"`
	NATS         NATSConfig         `koanf:"nats"`
}

type ServerConfig struct {
	Port              string        `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

type StorageConfig struct {
	Driver        string `koanf:"driver"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
	PostgresDSN   string `koanf:"postgres_dsn"`
}

type SpeciesConfig struct {
	BaseURL      string        `koanf:"base_url"`
	Radius       int           `koanf:"radius"` // meters
	ExcludedTaxa []string      `koanf:"excluded_taxa"`
	Timeout      time.Duration `koanf:"timeout"`
}

type EncyclopediaConfig struct {
	BaseURL           string        `koanf:"base_url"`
	ThumbnailSize     int           `koanf:"thumbnail_size"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	UserAgent         string        `koanf:"user_agent"`
}

// NATSConfig: an empty URL disables event publishing.
type NATSConfig struct {
	URL           string `koanf:"url"`
	SubjectPrefix string `koanf:"subject_prefix"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              "8080",
			ReadTimeout:       5 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 120,
			RateLimitWindow:   time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			App:    "critter-collector",
		},
		Storage: StorageConfig{
			Driver:        DriverMemory,
			MongoDatabase: "critter-collector",
		},
		Species: SpeciesConfig{
			BaseURL:      "https://api.mol.org/1.x",
			Radius:       5000,
			ExcludedTaxa: []string{"plants", "butterflies"},
			Timeout:      10 * time.Second,
		},
		Encyclopedia: EncyclopediaConfig{
			BaseURL:           "https://en.wikipedia.org/w/api.php",
			ThumbnailSize:     300,
			Timeout:           5 * time.Second,
			RequestsPerSecond: 50,
			Burst:             20,
			UserAgent:         "critter-collector/1.0 (https://github.com/critter-collector)",
		},
		NATS: NATSConfig{
			SubjectPrefix: "critters",
		},
	}
}

// Load resolves configuration in order: defaults, yaml file, .env, environment.
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := splitListFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverMongo:
		if strings.TrimSpace(c.Storage.MongoURI) == "" {
			return errors.New("storage.mongo_uri is required for the mongo driver")
		}
		if strings.TrimSpace(c.Storage.MongoDatabase) == "" {
			return errors.New("storage.mongo_database is required for the mongo driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			return errors.New("storage.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Species.Radius <= 0 {
		return errors.New("species.radius must be positive")
	}
	if strings.TrimSpace(c.Species.BaseURL) == "" {
		return errors.New("species.base_url is required")
	}
	if strings.TrimSpace(c.Encyclopedia.BaseURL) == "" {
		return errors.New("encyclopedia.base_url is required")
	}
	if c.Encyclopedia.RequestsPerSecond <= 0 {
		return errors.New("encyclopedia.requests_per_second must be positive")
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"port":                             "server.port",
	"server_read_timeout":              "server.read_timeout",
	"server_write_timeout":             "server.write_timeout",
	"server_shutdown_timeout":          "server.shutdown_timeout",
	"cors_origins":                     "server.cors_origins",
	"rate_limit_requests":              "server.rate_limit_requests",
	"rate_limit_window":                "server.rate_limit_window",
	"log_level":                        "log.level",
	"log_format":                       "log.format",
	"app_name":                         "log.app",
	"storage_driver":                   "storage.driver",
	"mongo_uri":                        "storage.mongo_uri",
	"mongo_database":                   "storage.mongo_database",
	"db_dsn":                           "storage.postgres_dsn",
	"species_api_url":                  "species.base_url",
	"species_radius":                   "species.radius",
	"species_excluded_taxa":            "species.excluded_taxa",
	"species_timeout":                  "species.timeout",
	"encyclopedia_api_url":             "encyclopedia.base_url",
	"encyclopedia_thumbnail_size":      "encyclopedia.thumbnail_size",
	"encyclopedia_timeout":             "encyclopedia.timeout",
	"encyclopedia_requests_per_second": "encyclopedia.requests_per_second",
	"encyclopedia_burst":               "encyclopedia.burst",
	"encyclopedia_user_agent":          "encyclopedia.user_agent",
	"nats_url":                         "nats.url",
	"nats_subject_prefix":              "nats.subject_prefix",
}

// envTransformFunc maps known variables to config keys. Unknown variables
// return "" and are dropped by the provider.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

var listPaths = []string{
	"server.cors_origins",
	"species.excluded_taxa",
}

// splitListFields turns comma separated env values into slices.
func splitListFields(k *koanf.Koanf) error {
	for _, path := range listPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}
