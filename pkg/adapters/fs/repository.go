package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/slidekit/pkg/core"
)

// Repository implements core.Repository over a single deck directory.
type Repository struct {
	Path   string
	config Config
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path    string
	Pattern string // Fragment glob, defaults to core.FragmentPattern.
	Logger  *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Pattern == "" {
		config.Pattern = core.FragmentPattern
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize checks that the deck directory exists. It never creates it.
func (r *Repository) Initialize(ctx context.Context) error {
	info, err := os.Stat(r.Path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", r.Path, core.ErrNotDirectory)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", r.Path, core.ErrNotDirectory)
	}
	return nil
}

// ListFragments reads every file directly inside the directory that matches
// the fragment pattern and is not in the ignore set, sorted by name.
//
// Subdirectories are not descended into. Symlinks are followed once so a
// linked slide still counts.
func (r *Repository) ListFragments(ctx context.Context) ([]core.Fragment, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if core.IsIgnored(name) {
			continue
		}

		match, err := doublestar.Match(r.config.Pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid fragment pattern %q: %w", r.config.Pattern, err)
		}
		if !match {
			continue
		}

		if !r.isFile(entry) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)

	fragments := make([]core.Fragment, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filepath.Join(r.Path, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read fragment %s: %w", name, err)
		}
		fragments = append(fragments, core.Fragment{Name: name, Content: string(data)})
		r.config.Logger.Debug("fragment loaded", "name", name, "bytes", len(data))
	}

	return fragments, nil
}

func (r *Repository) isFile(entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(r.Path, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// WriteDeck replaces the combined document atomically.
func (r *Repository) WriteDeck(ctx context.Context, data []byte) (string, error) {
	out := filepath.Join(r.Path, core.OutputFileName)
	if err := writeFileAtomic(out, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return out, nil
}
