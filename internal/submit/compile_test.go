// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor simulates a LaTeX toolchain without running one.
type fakeExecutor struct {
	available map[string]bool
	output    []byte
	runErr    error
	ranBin    string
	ranArgs   []string
	ranDir    string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.available[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found")
}

func (f *fakeExecutor) RunInDir(dir, name string, args ...string) ([]byte, error) {
	f.ranDir = dir
	f.ranBin = name
	f.ranArgs = args
	return f.output, f.runErr
}

func writeProject(t *testing.T, mainContent string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tex"), []byte(mainContent), 0o644))
	return dir
}

func TestCompilePrefersLatexmk(t *testing.T) {
	exec := &fakeExecutor{available: map[string]bool{"latexmk": true, "pdflatex": true}}
	c := &ToolCompiler{exec: exec}
	dir := writeProject(t, "\\documentclass{article}\n\\begin{document}hi\\end{document}\n")

	report, err := c.Compile(dir)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, "latexmk", exec.ranBin)
	assert.Contains(t, exec.ranArgs, "main.tex")
	assert.Equal(t, dir, exec.ranDir)
}

func TestCompileFallsBackToPdflatex(t *testing.T) {
	exec := &fakeExecutor{available: map[string]bool{"pdflatex": true}}
	c := &ToolCompiler{exec: exec}
	dir := writeProject(t, "\\documentclass{article}")

	_, err := c.Compile(dir)
	require.NoError(t, err)
	assert.Equal(t, "pdflatex", exec.ranBin)
	assert.Contains(t, exec.ranArgs, "-interaction=nonstopmode")
}

func TestCompileNoToolchain(t *testing.T) {
	c := &ToolCompiler{exec: &fakeExecutor{available: map[string]bool{}}}
	dir := writeProject(t, "\\documentclass{article}")

	_, err := c.Compile(dir)
	assert.ErrorContains(t, err, "no LaTeX toolchain")
}

func TestCompileParsesErrorsAndWarnings(t *testing.T) {
	output := []byte("This is pdfTeX\n" +
		"! Undefined control sequence.\n" +
		"LaTeX Warning: Reference `fig:arch' on page 1 undefined.\n" +
		"Output written on main.pdf\n")
	exec := &fakeExecutor{
		available: map[string]bool{"latexmk": true},
		output:    output,
		runErr:    errors.New("exit status 1"),
	}
	c := &ToolCompiler{exec: exec}
	dir := writeProject(t, "\\documentclass{article}")

	report, err := c.Compile(dir)
	require.NoError(t, err)
	assert.False(t, report.Success)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Undefined control sequence.", report.Errors[0])
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "fig:arch")
}

func TestCompileReportsMissingMainDocument(t *testing.T) {
	c := &ToolCompiler{exec: &fakeExecutor{available: map[string]bool{"latexmk": true}}}

	report, err := c.Compile(t.TempDir())
	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Errors)
}

func TestCompileDetectsProducedDocument(t *testing.T) {
	exec := &fakeExecutor{available: map[string]bool{"latexmk": true}}
	c := &ToolCompiler{exec: exec}
	dir := writeProject(t, "\\documentclass{article}")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.pdf"), []byte("%PDF-1.5"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.log"), []byte("log"), 0o644))

	report, err := c.Compile(dir)
	require.NoError(t, err)
	assert.True(t, report.DocumentProduced)
	assert.Equal(t, "main.log", report.LogPath)
}

func TestFindMainDocumentPrefersDocumentclass(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abstract.tex"), []byte("no class here"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.tex"), []byte("\\documentclass{article}"), 0o644))

	main, err := FindMainDocument(dir)
	require.NoError(t, err)
	assert.Equal(t, "paper.tex", main)
}

func TestFindMainDocumentFallsBackToFirstTex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.tex"), []byte("fragment"), 0o644))

	main, err := FindMainDocument(dir)
	require.NoError(t, err)
	assert.Equal(t, "notes.tex", main)
}

func TestFindMainDocumentNone(t *testing.T) {
	_, err := FindMainDocument(t.TempDir())
	assert.Error(t, err)
}
