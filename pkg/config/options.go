package config

// Option configures a single Load or LoadFile call.
type Option func(*options)

type options struct {
	prefix          string
	envFiles        []string
	requiredIfNoDef bool
}

// WithPrefix prepends prefix to every env key, e.g. "APP_" turns
// NOTIFY_MAX_SUBSCRIBERS into APP_NOTIFY_MAX_SUBSCRIBERS.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads the given .env files before parsing. Later files win
// over earlier ones and the process environment wins over all of them.
// The process environment itself is never modified.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// WithRequiredIfNoDef treats every field without an envDefault as required.
func WithRequiredIfNoDef() Option {
	return func(o *options) {
		o.requiredIfNoDef = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
