package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/slidekit/pkg/adapters/fs"
	"github.com/aretw0/slidekit/pkg/core"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func newService(t *testing.T, dir string) *core.Service {
	t.Helper()
	repo := fs.NewRepository(fs.Config{Path: dir})
	require.NoError(t, repo.Initialize(context.Background()))
	return core.NewService(repo, nil)
}

func TestRepository_Initialize(t *testing.T) {
	t.Run("Missing Directory", func(t *testing.T) {
		repo := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "nope")})
		err := repo.Initialize(context.Background())
		assert.ErrorIs(t, err, core.ErrNotDirectory)
	})

	t.Run("Path Is A File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "slides.md")
		require.NoError(t, os.WriteFile(file, []byte("# x"), 0644))

		repo := fs.NewRepository(fs.Config{Path: file})
		err := repo.Initialize(context.Background())
		assert.ErrorIs(t, err, core.ErrNotDirectory)
	})
}

func TestRepository_ListFragments(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose.
	writeFiles(t, dir, map[string]string{
		"c.md":               "# C",
		"a.md":               "# A",
		"b.md":               "# B",
		"README.md":          "docs",
		"CLAUDE.md":          "agent notes",
		"combined_slides.md": "old output",
		"notes.txt":          "not a slide",
		"style.yaml":         "marp: true",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.md"), 0755))
	writeFiles(t, filepath.Join(dir, "nested.md"), map[string]string{"z.md": "# Z"})

	repo := fs.NewRepository(fs.Config{Path: dir})
	fragments, err := repo.ListFragments(context.Background())
	require.NoError(t, err)

	var names []string
	for _, f := range fragments {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, names)
	assert.Equal(t, "# A", fragments[0].Content)
}

func TestRepository_ListFragments_Symlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "shared.md")
	require.NoError(t, os.WriteFile(target, []byte("# Shared"), 0644))
	if err := os.Symlink(target, filepath.Join(dir, "01-shared.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	repo := fs.NewRepository(fs.Config{Path: dir})
	fragments, err := repo.ListFragments(context.Background())
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Equal(t, "# Shared", fragments[0].Content)
}

func TestCombine_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"style.yaml": "\nmarp: true\ntheme: default\n",
		"02.md":      "\n## Code\n\n```go\nfmt.Println(1)\n```\n",
		"01.md":      "# Title\n",
		"03.md":      "## Table\n\n| a | b |\n|---|---|\n| 1 | 2 |\n",
		"README.md":  "# not a slide",
	})

	svc := newService(t, dir)
	res, err := svc.Combine(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Slides)
	assert.Equal(t, filepath.Join(dir, core.OutputFileName), res.OutputPath)
	assert.False(t, res.StyleCreated)
	assert.Equal(t, []string{"02.md", "03.md"}, res.DenseSlides)

	got, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)

	want := "---\nmarp: true\ntheme: default\n---\n\n" +
		"# Title\n\n---\n\n" +
		"<!-- _class: fit -->\n## Code\n\n```go\nfmt.Println(1)\n```\n\n---\n\n" +
		"<!-- _class: fit -->\n## Table\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	assert.Equal(t, want, string(got))
}

func TestCombine_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"style.yaml": "marp: true",
		"a.md":       "# A",
		"b.md":       "# B",
	})

	svc := newService(t, dir)
	_, err := svc.Combine(context.Background(), "")
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, core.OutputFileName))
	require.NoError(t, err)

	// The previous output sits in the directory now and must not leak in.
	_, err = svc.Combine(context.Background(), "")
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, core.OutputFileName))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestCombine_StyleFallback(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# A"})

	template := filepath.Join(t.TempDir(), "default-style.yaml")
	require.NoError(t, os.WriteFile(template, []byte("marp: true\npaginate: true\n"), 0644))

	svc := newService(t, dir)
	res, err := svc.Combine(context.Background(), template)
	require.NoError(t, err)
	assert.True(t, res.StyleCreated)

	copied, err := os.ReadFile(filepath.Join(dir, core.StyleFileName))
	require.NoError(t, err)
	assert.Equal(t, "marp: true\npaginate: true\n", string(copied))

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "---\nmarp: true\npaginate: true\n---\n\n# A"))

	// The directory is self-sufficient afterwards.
	res, err = svc.Combine(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, res.StyleCreated)
}

func TestCombine_ExistingStyleWins(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":       "# A",
		"style.yaml": "theme: local",
	})
	template := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, os.WriteFile(template, []byte("theme: template"), 0644))

	svc := newService(t, dir)
	res, err := svc.Combine(context.Background(), template)
	require.NoError(t, err)
	assert.False(t, res.StyleCreated)

	out, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "theme: local")
	assert.NotContains(t, string(out), "theme: template")
}

func TestCombine_Failures(t *testing.T) {
	t.Run("No Slides", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"style.yaml": "marp: true",
			"README.md":  "docs only",
		})

		svc := newService(t, dir)
		_, err := svc.Combine(context.Background(), "")
		assert.ErrorIs(t, err, core.ErrNoSlides)

		_, statErr := os.Stat(filepath.Join(dir, core.OutputFileName))
		assert.True(t, os.IsNotExist(statErr), "output must not be created")
	})

	t.Run("No Slides Keeps Previous Output", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"style.yaml":         "marp: true",
			"combined_slides.md": "previous",
		})

		svc := newService(t, dir)
		_, err := svc.Combine(context.Background(), "")
		assert.ErrorIs(t, err, core.ErrNoSlides)

		data, readErr := os.ReadFile(filepath.Join(dir, core.OutputFileName))
		require.NoError(t, readErr)
		assert.Equal(t, "previous", string(data))
	})

	t.Run("No Style", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"a.md": "# A"})

		svc := newService(t, dir)
		_, err := svc.Combine(context.Background(), filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, core.ErrNoStyle)

		_, statErr := os.Stat(filepath.Join(dir, core.OutputFileName))
		assert.True(t, os.IsNotExist(statErr), "output must not be created")
		_, statErr = os.Stat(filepath.Join(dir, core.StyleFileName))
		assert.True(t, os.IsNotExist(statErr), "style must not be created")
	})
}

func TestRepository_State(t *testing.T) {
	dir := t.TempDir()
	repo := fs.NewRepository(fs.Config{Path: dir})

	state, ok := repo.State().(fs.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, dir, state.Path)
	assert.Equal(t, core.FragmentPattern, state.Pattern)
	assert.Equal(t, "fs", repo.ComponentType())
}
