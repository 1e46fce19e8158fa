package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParsingConfig is returned when the environment or a YAML document
	// cannot be decoded into the config struct.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrReadingFile is returned when a config file cannot be read.
	ErrReadingFile = errors.New("failed to read config file")

	// ErrLoadingEnvFile is returned when a .env file cannot be read or parsed.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
