package platform

import (
	"github.com/aretw0/slidekit/pkg/core"
)

// New creates a combine service for the deck at uri.
//
//	svc, err := slidekit.New("./talk", slidekit.WithLogger(logger))
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(uri, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo, loggerOrDefault(o.logger)), nil
}
