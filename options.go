package toolwire

import "log/slog"

// Option configures a Client using the functional options pattern.
type Option func(*clientOptions)

// clientOptions collects client configuration.
type clientOptions struct {
	Logger *slog.Logger
}

// applyOptions applies functional options to a clientOptions struct.
func applyOptions(opts []Option) *clientOptions {
	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for client-side debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.Logger = logger
	}
}
