package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/lifecycle"
)

// Service combines slide fragments into a deck.
type Service struct {
	repo   Repository
	logger *slog.Logger

	lastResult *Result
}

// NewService creates a new Service. A nil logger falls back to slog.Default().
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Combine discovers fragments, resolves the style block and writes the
// combined deck.
//
// Workflow:
//  1. List fragments; none is ErrNoSlides.
//  2. Resolve style (existing file, else copy of templatePath); none is ErrNoStyle.
//  3. Assemble and write the output, replacing any previous version.
//
// Both sentinel conditions are detected before anything is written to the
// output file. Once the write starts it runs to completion even if ctx is
// cancelled, so an interrupt never leaves the output half-replaced.
func (s *Service) Combine(ctx context.Context, templatePath string) (Result, error) {
	fragments, err := s.repo.ListFragments(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list fragments: %w", err)
	}
	if len(fragments) == 0 {
		return Result{}, ErrNoSlides
	}
	s.logger.Debug("fragments discovered", "count", len(fragments))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	style, err := s.repo.EnsureStyle(ctx, templatePath)
	if err != nil {
		return Result{}, err
	}
	if style.Created {
		s.logger.Debug("style created from template", "path", style.Path, "template", templatePath)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	deck := Deck{Style: style, Slides: fragments}
	data := Assemble(deck)

	var out string
	err = lifecycle.DoDetached(ctx, func(ctx context.Context) error {
		var werr error
		out, werr = s.repo.WriteDeck(ctx, data)
		return werr
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to write deck: %w", err)
	}

	res := Result{
		Slides:       len(fragments),
		OutputPath:   out,
		StylePath:    style.Path,
		StyleCreated: style.Created,
		DenseSlides:  denseSlides(fragments),
	}
	s.lastResult = &res
	s.logger.Debug("deck written", "path", out, "bytes", len(data), "dense", len(res.DenseSlides))

	return res, nil
}

func denseSlides(fragments []Fragment) []string {
	var names []string
	for _, f := range fragments {
		if IsDense(strings.TrimSpace(f.Content)) {
			names = append(names, f.Name)
		}
	}
	return names
}
