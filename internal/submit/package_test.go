// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packagedProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"main.tex":       "\\documentclass{article}",
		"references.bib": "@misc{a}",
		"main.pdf":       "%PDF-1.5",
		"ieee.cls":       "% class",
		"notes.txt":      "scratch notes",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "figures", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "figures", "arch.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "figures", "nested", "plot.pdf"), []byte("pdf"), 0o644))
	return dir
}

func TestPackageCopiesSubmittableFiles(t *testing.T) {
	dir := packagedProject(t)
	out := t.TempDir()

	result, err := Package(dir, out)
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(result.Dir), "submission-package-")
	assert.Contains(t, result.Files, "main.tex")
	assert.Contains(t, result.Files, "references.bib")
	assert.Contains(t, result.Files, "main.pdf")
	assert.Contains(t, result.Files, "ieee.cls")
	assert.NotContains(t, result.Files, "notes.txt")

	// Figures are mirrored recursively.
	assert.Contains(t, result.Files, filepath.Join("figures", "arch.png"))
	assert.Contains(t, result.Files, filepath.Join("figures", "nested", "plot.pdf"))
	_, err = os.Stat(filepath.Join(result.Dir, "figures", "nested", "plot.pdf"))
	assert.NoError(t, err)

	// The original project is untouched.
	_, err = os.Stat(filepath.Join(dir, "main.tex"))
	assert.NoError(t, err)
}

func TestPackageToleratesMissingFigures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tex"), []byte("x"), 0o644))

	result, err := Package(dir, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"main.tex"}, result.Files)
}

func TestPackageDefaultsOutputToProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tex"), []byte("x"), 0o644))

	result, err := Package(dir, "")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(result.Dir))
}

func TestCleanRemovesArtifactsOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"main.tex", "main.aux", "main.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	removed, err := Clean(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.aux", "main.log"}, removed)

	_, err = os.Stat(filepath.Join(dir, "main.tex"))
	assert.NoError(t, err, "source files must survive clean")
	_, err = os.Stat(filepath.Join(dir, "main.aux"))
	assert.True(t, os.IsNotExist(err))
}

func TestCleanNoArtifacts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tex"), []byte("x"), 0o644))

	removed, err := Clean(dir)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleanMissingDirectoryIsError(t *testing.T) {
	_, err := Clean(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
