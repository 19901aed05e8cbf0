package core

import "context"

// Repository defines where fragments come from and where the deck goes.
// Adhering to this interface keeps the assembly rules independent of the
// filesystem.
type Repository interface {
	// ListFragments returns eligible fragments sorted by name.
	ListFragments(ctx context.Context) ([]Fragment, error)

	// EnsureStyle returns the deck style, materializing it from templatePath
	// when the repository has none yet. templatePath may be empty.
	EnsureStyle(ctx context.Context, templatePath string) (StyleBlock, error)

	// WriteDeck replaces the combined document and returns where it was written.
	WriteDeck(ctx context.Context, data []byte) (string, error)

	// Initialize ensures the underlying storage is usable.
	Initialize(ctx context.Context) error
}
