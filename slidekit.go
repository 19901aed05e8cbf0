package slidekit

import (
	"context"
	"log/slog"

	"github.com/aretw0/slidekit/internal/platform"
	"github.com/aretw0/slidekit/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring slidekit.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithPattern overrides the glob that selects slide fragments.
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// --- Factory ---

// New creates a combine service for the deck directory at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// --- Operations ---

// Combine writes combined_slides.md for the deck at path. templatePath is
// copied to style.yaml when the deck has no style yet; it may be empty.
func Combine(ctx context.Context, path, templatePath string, opts ...Option) (core.Result, error) {
	return platform.Combine(ctx, path, templatePath, opts...)
}
