// Package config loads configuration structs from the environment and from
// YAML files.
//
// It wraps `github.com/caarlos0/env/v11`, `github.com/joho/godotenv` and
// `gopkg.in/yaml.v3`. Config structs describe themselves with field tags:
//
//	type Config struct {
//	    MaxSubscribers int  `env:"NOTIFY_MAX_SUBSCRIBERS" envDefault:"16" yaml:"max_subscribers"`
//	    ThreadSafe     bool `env:"NOTIFY_THREAD_SAFE" envDefault:"true" yaml:"thread_safe"`
//	}
//
// # Loading from the environment
//
//	var cfg notify.Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env"), config.WithPrefix("APP_")); err != nil {
//	    log.Fatal(err)
//	}
//
// .env files given with WithEnvFiles are merged in order and the process
// environment wins over them. The files never modify the process environment.
//
// # Loading from a file
//
// LoadFile decodes a YAML document and then applies environment overrides:
//
//	var cfg stoppable.Config
//	config.MustLoadFile("worker.yaml", &cfg)
//
// Values resolve as envDefault, then the file, then .env files, then the
// process environment. Unknown YAML keys are an error.
//
// # No caching
//
// Every call parses afresh. There is no package-level state, so tests can
// load the same type repeatedly with different environments.
//
// # Errors
//
//   - ErrNilPointer: a nil pointer was passed.
//   - ErrParsingConfig: the environment or YAML could not be decoded.
//   - ErrReadingFile: the YAML file could not be read.
//   - ErrLoadingEnvFile: a .env file could not be read or parsed.
package config
