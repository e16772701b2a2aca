package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load parses environment variables into v using `env` / `envDefault` struct
// tags.
//
// Without envFiles the default .env in the working directory is loaded if it
// exists. Explicit envFiles must exist. Variables already present in the
// process environment are never overwritten by file values.
//
// Example:
//
//	type Config struct {
//		TTL string `env:"SEGMENT_TTL" envDefault:"3600"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, envFiles ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(envFiles) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// LoadFile loads v from environment variables (see Load) and then overlays the
// YAML document at path. Keys present in the file take precedence over the
// environment and defaults.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := Load(v); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrReadingFile, fmt.Errorf("decode %s: %w", path, err))
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, envFiles ...string) {
	if err := Load(v, envFiles...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
