package fs

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/slidekit/pkg/core"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path    string `json:"path"`
	Pattern string `json:"pattern"`
	Style   string `json:"style"`
	Output  string `json:"output"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{
		Path:    r.Path,
		Pattern: r.config.Pattern,
		Style:   core.StyleFileName,
		Output:  core.OutputFileName,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
