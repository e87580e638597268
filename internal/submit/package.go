// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// packageExts are the root-level file extensions copied into a submission
// package.
var packageExts = map[string]bool{
	".tex": true,
	".bib": true,
	".pdf": true,
	".cls": true,
	".sty": true,
}

// artifactExts are the intermediate compilation artifacts removed by Clean.
var artifactExts = map[string]bool{
	".aux":         true,
	".log":         true,
	".bbl":         true,
	".blg":         true,
	".toc":         true,
	".out":         true,
	".fls":         true,
	".fdb_latexmk": true,
}

// PackageResult describes the assembled submission package.
type PackageResult struct {
	// Dir is the package directory created under the output directory.
	Dir string `json:"dir"`

	// Files lists the package-relative paths that were copied.
	Files []string `json:"files"`
}

// Package assembles a submission package: a timestamp-named directory under
// outputDir holding the project's submittable root files and a mirror of its
// figures directory. A missing figures directory is tolerated.
func Package(projectPath, outputDir string) (PackageResult, error) {
	if outputDir == "" {
		outputDir = projectPath
	}

	name := "submission-package-" + time.Now().Format("20060102-150405")
	dest := filepath.Join(outputDir, name)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return PackageResult{}, fmt.Errorf("creating package directory: %w", err)
	}
	result := PackageResult{Dir: dest}

	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return PackageResult{}, fmt.Errorf("reading project directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !packageExts[filepath.Ext(entry.Name())] {
			continue
		}
		if err := copyFile(filepath.Join(projectPath, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return PackageResult{}, err
		}
		result.Files = append(result.Files, entry.Name())
	}

	figures := filepath.Join(projectPath, "figures")
	if info, err := os.Stat(figures); err == nil && info.IsDir() {
		copied, err := copyTree(figures, filepath.Join(dest, "figures"))
		if err != nil {
			return PackageResult{}, err
		}
		for _, rel := range copied {
			result.Files = append(result.Files, filepath.Join("figures", rel))
		}
	}

	sort.Strings(result.Files)
	return result, nil
}

// Clean removes intermediate compilation artifacts from the project root and
// returns the removed file names, sorted. A missing project directory is an
// error; a project with no artifacts is not.
func Clean(projectPath string) ([]string, error) {
	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !artifactExts[filepath.Ext(entry.Name())] {
			continue
		}
		if err := os.Remove(filepath.Join(projectPath, entry.Name())); err != nil {
			return removed, fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}
	sort.Strings(removed)
	return removed, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}

// copyTree mirrors src into dst recursively and returns the src-relative
// paths of the copied files.
func copyTree(src, dst string) ([]string, error) {
	var copied []string
	err := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied = append(copied, rel)
		return nil
	})
	return copied, err
}
