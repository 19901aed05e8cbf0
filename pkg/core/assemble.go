package core

import "strings"

// IsDense reports whether a slide carries enough code or table content to
// need the fit layout. It counts raw occurrences, so a pipe in prose or inline
// code counts the same as a table column.
func IsDense(content string) bool {
	return strings.Count(content, CodeFence) >= DenseFenceThreshold ||
		strings.Count(content, TableColumn) >= DensePipeThreshold
}

// Assemble renders the deck as a single frontmatter-delimited document.
//
// Layout:
//
//	---
//	<style>
//	---
//
//	<slide 1>
//
//	---
//
//	<slide N>
//
// Slide content is trimmed; dense slides are preceded by FitMarker. The
// document ends with one newline and no trailing separator.
func Assemble(deck Deck) []byte {
	var b strings.Builder

	b.WriteString(FrontmatterDelimiter + "\n")
	b.WriteString(strings.TrimSpace(deck.Style.Content))
	b.WriteString("\n" + FrontmatterDelimiter + "\n\n")

	for i, slide := range deck.Slides {
		content := strings.TrimSpace(slide.Content)
		if IsDense(content) {
			b.WriteString(FitMarker)
		}
		b.WriteString(content)

		if i < len(deck.Slides)-1 {
			b.WriteString(SlideSeparator)
		} else {
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}
