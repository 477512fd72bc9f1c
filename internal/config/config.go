// Package config loads runtime settings from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvProd is the environment name that enables production-only checks.
const EnvProd = "prod"

// Config holds the application settings.
type Config struct {
	Environment string `yaml:"environment"`
	Diet        Diet   `yaml:"diet"`
}

// Diet holds the default diet planner settings.
type Diet struct {
	Protein      int    `yaml:"protein"`
	Fat          int    `yaml:"fat"`
	Carbohydrate int    `yaml:"carbohydrate"`
	Activity     string `yaml:"activity"`
	Formula      string `yaml:"formula"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Environment: EnvProd,
		Diet: Diet{
			Protein:      20,
			Fat:          30,
			Carbohydrate: 50,
			Activity:     "sedentary",
			Formula:      "harris-benedict",
		},
	}
}

// IsProd reports whether the configured environment is production.
func (c Config) IsProd() bool {
	return c.Environment == EnvProd
}

// Load reads .env (if present), then DIET_CONFIG (if set), then APP_ENV.
// Later sources win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
		log.Printf("config: no .env file, using environment only")
	}

	cfg := Default()
	if path := os.Getenv("DIET_CONFIG"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		defer func() { _ = f.Close() }()

		cfg, err = parseInto(cfg, f)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		log.Printf("config: loaded %s", path)
	}

	cfg.Environment = env("APP_ENV", cfg.Environment)
	return cfg, nil
}

// Parse decodes a YAML document over the default settings.
func Parse(r io.Reader) (Config, error) {
	return parseInto(Default(), r)
}

func parseInto(cfg Config, r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid yaml: %w", err)
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
