package stoppable

import (
	"log/slog"
)

// Option configures a Thread.
type Option func(*Thread)

// WithSpawner replaces the default GoSpawner. Nil is ignored.
func WithSpawner(s Spawner) Option {
	return func(t *Thread) {
		if s != nil {
			t.spawner = s
		}
	}
}

// WithLogger enables lifecycle logging. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Thread) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithName sets the name reported in log records. Empty names are ignored.
func WithName(name string) Option {
	return func(t *Thread) {
		if name != "" {
			t.name = name
		}
	}
}

// Config holds Thread settings loadable by pkg/config.
type Config struct {
	Name string `env:"STOPPABLE_NAME" envDefault:"worker" yaml:"name"`
	// MaxGoroutines bounds the spawner; 0 means unlimited.
	MaxGoroutines int `env:"STOPPABLE_MAX_GOROUTINES" envDefault:"0" yaml:"max_goroutines"`
}

// FromConfig translates cfg into options.
func FromConfig(cfg Config) []Option {
	opts := []Option{WithName(cfg.Name)}
	if cfg.MaxGoroutines > 0 {
		opts = append(opts, WithSpawner(NewGroupSpawner(cfg.MaxGoroutines)))
	}
	return opts
}
