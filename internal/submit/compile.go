// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submit implements the submission pipeline: validation checks,
// packaging, checklist generation, and artifact cleanup.
package submit

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

const (
	binLatexmk  = "latexmk"
	binPdflatex = "pdflatex"
)

// Compiler attempts a compilation of the project's main document and reports
// the outcome. A failed compilation is a report, not an error; errors are
// reserved for the compiler being unable to run at all.
type Compiler interface {
	Compile(projectPath string) (types.CompilationReport, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunInDir(dir, name string, args ...string) (output []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunInDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.Bytes(), err
}

// ToolCompiler drives a LaTeX toolchain binary found on PATH. It prefers
// latexmk and falls back to pdflatex in nonstop mode.
type ToolCompiler struct {
	exec executor
}

// NewToolCompiler returns a compiler over the host's LaTeX installation.
func NewToolCompiler() *ToolCompiler {
	return &ToolCompiler{exec: &osExecutor{}}
}

// Compile locates the project's main document, runs the toolchain on it, and
// parses the output for errors and warnings.
func (c *ToolCompiler) Compile(projectPath string) (types.CompilationReport, error) {
	report := types.CompilationReport{}

	mainDoc, err := FindMainDocument(projectPath)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}

	bin, args, err := c.toolchain(mainDoc)
	if err != nil {
		return report, err
	}

	output, runErr := c.exec.RunInDir(projectPath, bin, args...)
	report.Errors, report.Warnings = parseCompileOutput(output)
	if runErr != nil && len(report.Errors) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", bin, runErr))
	}
	report.Success = runErr == nil && len(report.Errors) == 0

	base := strings.TrimSuffix(mainDoc, filepath.Ext(mainDoc))
	if _, statErr := os.Stat(filepath.Join(projectPath, base+".pdf")); statErr == nil {
		report.DocumentProduced = true
	}
	if _, statErr := os.Stat(filepath.Join(projectPath, base+".log")); statErr == nil {
		report.LogPath = base + ".log"
	}

	return report, nil
}

// toolchain picks the compile command: latexmk when present, else pdflatex.
func (c *ToolCompiler) toolchain(mainDoc string) (string, []string, error) {
	if _, err := c.exec.LookPath(binLatexmk); err == nil {
		return binLatexmk, []string{"-pdf", "-interaction=nonstopmode", mainDoc}, nil
	}
	if _, err := c.exec.LookPath(binPdflatex); err == nil {
		return binPdflatex, []string{"-interaction=nonstopmode", mainDoc}, nil
	}
	return "", nil, fmt.Errorf("no LaTeX toolchain found: install %s or %s", binLatexmk, binPdflatex)
}

// parseCompileOutput extracts TeX error lines (prefixed "!") and LaTeX
// warnings from toolchain output.
func parseCompileOutput(output []byte) (errs, warnings []string) {
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "!"):
			errs = append(errs, strings.TrimSpace(strings.TrimPrefix(line, "!")))
		case strings.Contains(line, "LaTeX Warning"):
			warnings = append(warnings, strings.TrimSpace(line))
		}
	}
	return errs, warnings
}

// FindMainDocument returns the project-relative path of the first .tex file
// at the project root that declares a document class.
func FindMainDocument(projectPath string) (string, error) {
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return "", fmt.Errorf("reading project directory: %w", err)
	}

	var fallback string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tex" {
			continue
		}
		if fallback == "" {
			fallback = entry.Name()
		}
		data, err := os.ReadFile(filepath.Join(projectPath, entry.Name()))
		if err != nil {
			continue
		}
		if strings.Contains(string(data), `\documentclass`) {
			return entry.Name(), nil
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("no main .tex document found in %s", projectPath)
}
