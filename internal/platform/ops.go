package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/slidekit/pkg/adapters/fs"
	"github.com/aretw0/slidekit/pkg/core"
)

// Init opens the deck at uri and returns its repository.
// The uri is adapter-specific (a directory path for "fs").
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(uri, o)
}

func initRepository(uri string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	switch o.adapter {
	case "fs":
		repo = fs.NewRepository(fs.Config{
			Path:    uri,
			Pattern: o.pattern,
			Logger:  loggerOrDefault(o.logger),
		})
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// Combine opens the deck at uri and writes its combined document in one call.
// templatePath may be empty.
func Combine(ctx context.Context, uri, templatePath string, opts ...Option) (core.Result, error) {
	svc, err := New(uri, opts...)
	if err != nil {
		return core.Result{}, err
	}
	return svc.Combine(ctx, templatePath)
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
