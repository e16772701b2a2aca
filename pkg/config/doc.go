// Package config loads application configuration into typed structs.
//
// It wraps github.com/joho/godotenv, github.com/caarlos0/env/v11 and
// gopkg.in/yaml.v3:
//
//   - Load reads optional .env files and parses the environment into a struct
//     annotated with `env` and `envDefault` tags.
//   - LoadFile does the same and then overlays a YAML document, so a config
//     file can be committed while secrets stay in the environment.
//   - MustLoad panics on failure for configuration the process cannot run
//     without.
//
// # Usage
//
//	cfg := segment.Config{}
//	if err := config.LoadFile("segment.yaml", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Precedence for LoadFile, highest first: YAML keys, environment variables,
// envDefault tags.
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrReadingFile or ErrNilPointer and can be
// matched with errors.Is.
package config
