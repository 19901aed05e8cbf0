package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/slidekit/pkg/core"
)

// EnsureStyle returns the deck's style block.
//
// Resolution order:
//  1. style.yaml inside the deck directory.
//  2. A copy of templatePath written to style.yaml, so later runs hit (1).
//  3. core.ErrNoStyle.
//
// The content is embedded as-is after trimming. A block that does not parse
// as YAML is only logged.
func (r *Repository) EnsureStyle(ctx context.Context, templatePath string) (core.StyleBlock, error) {
	stylePath := filepath.Join(r.Path, core.StyleFileName)

	created := false
	if _, err := os.Stat(stylePath); err != nil {
		if !os.IsNotExist(err) {
			return core.StyleBlock{}, fmt.Errorf("failed to stat style: %w", err)
		}
		if templatePath == "" || !exists(templatePath) {
			return core.StyleBlock{}, core.ErrNoStyle
		}
		if err := copyFile(templatePath, stylePath); err != nil {
			return core.StyleBlock{}, fmt.Errorf("failed to copy style template: %w", err)
		}
		created = true
	}

	data, err := os.ReadFile(stylePath)
	if err != nil {
		return core.StyleBlock{}, fmt.Errorf("failed to read style: %w", err)
	}
	content := strings.TrimSpace(string(data))

	var probe yaml.Node
	if err := yaml.Unmarshal([]byte(content), &probe); err != nil {
		r.config.Logger.Warn("style block is not valid YAML", "path", stylePath, "error", err)
	}

	return core.StyleBlock{
		Path:    stylePath,
		Content: content,
		Created: created,
	}, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// copyFile copies src to dst keeping src's permission bits.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return writeFileAtomic(dst, data, info.Mode().Perm())
}
