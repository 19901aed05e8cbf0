package core

import "errors"

// Common errors.
var (
	// ErrNoSlides is returned when the directory holds no eligible fragment.
	ErrNoSlides = errors.New("no markdown files found")

	// ErrNoStyle is returned when neither a style file nor a template is available.
	ErrNoStyle = errors.New("no style.yaml found and no default provided")

	// ErrNotDirectory is returned when the deck path is missing or not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
