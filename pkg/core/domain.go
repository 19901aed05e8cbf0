// Package core holds the deck domain: fragments, the shared style block and
// the rules that turn them into one combined document.
package core

import "sort"

const (
	// FragmentPattern selects slide fragments directly inside the deck directory.
	FragmentPattern = "*.md"

	// StyleFileName is the frontmatter file shared by every slide in the deck.
	StyleFileName = "style.yaml"

	// OutputFileName is the combined deck written next to the fragments.
	OutputFileName = "combined_slides.md"

	// CodeFence is the fenced-code-block delimiter counted by IsDense.
	CodeFence = "```"

	// TableColumn is the table-column delimiter counted by IsDense.
	TableColumn = "|"

	// DenseFenceThreshold is the number of code fences that marks a slide as dense.
	DenseFenceThreshold = 2

	// DensePipeThreshold is the number of pipe characters that marks a slide as dense.
	DensePipeThreshold = 8

	// FitMarker is prepended to dense slides so the theme shrinks them to fit.
	FitMarker = "<!-- _class: fit -->\n"

	// FrontmatterDelimiter opens and closes the style block.
	FrontmatterDelimiter = "---"

	// SlideSeparator sits between two consecutive slides.
	SlideSeparator = "\n\n---\n\n"
)

// ignoreSet lists file names that are never slides, even though they match
// FragmentPattern.
var ignoreSet = map[string]struct{}{
	OutputFileName: {},
	"CLAUDE.md":    {},
	"README.md":    {},
}

// IsIgnored reports whether name belongs to the ignore set.
func IsIgnored(name string) bool {
	_, ok := ignoreSet[name]
	return ok
}

// IgnoredNames returns the ignore set in sorted order. The slice is a copy.
func IgnoredNames() []string {
	names := make([]string, 0, len(ignoreSet))
	for name := range ignoreSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fragment is the markdown source of a single slide.
// Name is only used for ordering.
type Fragment struct {
	Name    string
	Content string
}

// StyleBlock is the frontmatter shared by the whole deck.
type StyleBlock struct {
	Path    string
	Content string
	// Created is true when this run materialized the style file from a template.
	Created bool
}

// Deck is everything needed to render the combined document.
type Deck struct {
	Style  StyleBlock
	Slides []Fragment
}

// Result summarizes one combine run.
type Result struct {
	Slides       int      `json:"slides"`
	OutputPath   string   `json:"output_path"`
	StylePath    string   `json:"style_path"`
	StyleCreated bool     `json:"style_created"`
	DenseSlides  []string `json:"dense_slides,omitempty"`
}
