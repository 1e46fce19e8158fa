package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// unusedDefaultTag points env at a tag nobody sets, so a parse with it only
// applies variables that are actually present.
const unusedDefaultTag = "envDefaultDisabled"

// Load parses the environment into v using its `env` and `envDefault` tags.
// Every call parses afresh; nothing is cached between calls.
//
// Example:
//
//	var cfg notify.Config
//	if err := config.Load(&cfg, config.WithPrefix("APP_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := newOptions(opts)
	environ, err := environment(o.envFiles)
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:          o.prefix,
		Environment:     environ,
		RequiredIfNoDef: o.requiredIfNoDef,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile decodes the YAML file at path into v and lets the environment
// override it. Precedence, from lowest to highest: envDefault, the file,
// .env files, the process environment.
//
// Unknown YAML keys are rejected. Required env fields are not enforced here,
// since their value may come from the file.
func LoadFile[T any](path string, v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	o := newOptions(opts)
	environ, err := environment(o.envFiles)
	if err != nil {
		return err
	}

	// Defaults first, then the file, then whatever the environment sets.
	if err := parseLenient(v, env.Options{Prefix: o.prefix, Environment: map[string]string{}}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := decodeYAML(data, v); err != nil {
		return errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", path, err))
	}
	if err := parseLenient(v, env.Options{
		Prefix:              o.prefix,
		Environment:         environ,
		DefaultValueTagName: unusedDefaultTag,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoadFile works like LoadFile but panics on failure.
func MustLoadFile[T any](path string, v *T, opts ...Option) {
	if err := LoadFile(path, v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load configuration file %s: %v", path, err))
	}
}

// environment merges the given .env files with the process environment.
func environment(files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, file := range files {
		vars, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		maps.Copy(merged, vars)
	}
	maps.Copy(merged, env.ToMap(os.Environ()))
	return merged, nil
}

func decodeYAML(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// parseLenient runs env.ParseWithOptions but tolerates variables that are
// marked required and not set.
func parseLenient(v any, opts env.Options) error {
	err := env.ParseWithOptions(v, opts)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}
	for _, e := range agg.Errors {
		var notSet env.VarIsNotSetError
		if !errors.As(e, &notSet) {
			return err
		}
	}
	return nil
}
