package hexgrid

import "runtime"

// Config holds settings for the batch operations.
type Config struct {
	Concurrency int     // Maximum parallel workers (default: GOMAXPROCS)
	Logger      *Logger // Progress and debug records (default: discard)
}

// Option is a functional option for configuring batch operations.
type Option func(*Config)

// WithConcurrency bounds the number of parallel workers. Values below one
// are treated as one.
func WithConcurrency(n int) Option {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.Concurrency = n
	}
}

// WithLogger sets the logger used for progress records.
func WithLogger(l *Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      NoopLogger(),
	}
}

func newConfig(opts []Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
