// Package config loads server settings from an optional YAML file with
// environment variable overrides for deployment knobs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server settings and route generation defaults. The depot and
// weight defaults apply when a /routes/generate request omits them.
type Config struct {
	Port     string `yaml:"port"`
	DBPath   string `yaml:"db_path"`
	SeedPath string `yaml:"seed_path"`
	RedisURL string `yaml:"redis_url"`

	Depot struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"depot"`

	VehicleCapacity int     `yaml:"vehicle_capacity"`
	SinceHours      int     `yaml:"since_hours"`
	UrgencyWeight   float64 `yaml:"urgency_weight"`
	DistanceWeight  float64 `yaml:"distance_weight"`
}

// Load reads path when it exists, fills unset fields with defaults, and
// applies environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// run on defaults
	default:
		return cfg, fmt.Errorf("load config: read %q: %w", path, err)
	}

	cfg.Port = Get("PORT", cfg.Port)
	cfg.DBPath = Get("DB_PATH", cfg.DBPath)
	cfg.SeedPath = Get("SEED_PATH", cfg.SeedPath)
	cfg.RedisURL = Get("REDIS_URL", cfg.RedisURL)

	return cfg, nil
}

func defaults() Config {
	cfg := Config{
		Port:            "8080",
		DBPath:          "data/app.db",
		SeedPath:        "data/seeds/messages.json",
		VehicleCapacity: 100,
		SinceHours:      24,
		UrgencyWeight:   0.6,
		DistanceWeight:  0.4,
	}
	// Waterloo region depot for local demos.
	cfg.Depot.Lat = 43.4643
	cfg.Depot.Lon = -80.5204
	return cfg
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
