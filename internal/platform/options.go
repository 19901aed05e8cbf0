package platform

import (
	"log/slog"

	"github.com/aretw0/slidekit/pkg/core"
)

// options holds the internal configuration for the slidekit service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	pattern    string
}

// Option defines a functional option for configuring slidekit.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		adapter:    "fs",
		pattern:    core.FragmentPattern,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a custom storage adapter (e.g. an in-memory deck).
// If provided, the default filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter selects the storage adapter by name. Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithPattern overrides the glob used to select fragments.
// The ignore set still applies.
func WithPattern(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.pattern = pattern
		}
	}
}
