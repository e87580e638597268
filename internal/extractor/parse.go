// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"regexp"
	"strings"
)

// Structure is the best-effort parse of a primary document. The parser is
// regex-based and intentionally non-exhaustive: it is an import aid, not a
// full LaTeX parser, and it does not handle nested braces.
type Structure struct {
	DocumentClass     string
	Packages          []string
	Sections          []Section
	Figures           []Figure
	Tables            []Table
	BibliographyStyle string
	BibliographyFile  string
}

// Section is one heading with its nesting level (0 = section,
// 1 = subsection, 2 = subsubsection).
type Section struct {
	Title string
	Level int
}

// Figure is one image reference with its caption and label.
type Figure struct {
	Path    string
	Caption string
	Label   string
}

// Table is one table environment with its caption, label, and column count.
type Table struct {
	Caption string
	Label   string
	Columns int
}

var (
	documentClassPattern = regexp.MustCompile(`\\documentclass(?:\[[^\]]*\])?\{([^{}]+)\}`)
	usePackagePattern    = regexp.MustCompile(`\\usepackage(?:\[[^\]]*\])?\{([^{}]+)\}`)
	sectionPattern       = regexp.MustCompile(`\\(sub)?(sub)?section\*?\{([^{}]*)\}`)
	graphicsPattern      = regexp.MustCompile(`\\includegraphics(?:\[[^\]]*\])?\{([^{}]+)\}`)
	captionPattern       = regexp.MustCompile(`\\caption\{([^{}]*)\}`)
	labelPattern         = regexp.MustCompile(`\\label\{([^{}]*)\}`)
	tabularPattern       = regexp.MustCompile(`\\begin\{tabular\}\{([^{}]*)\}`)
	bibStylePattern      = regexp.MustCompile(`\\bibliographystyle\{([^{}]+)\}`)
	bibFilePattern       = regexp.MustCompile(`\\bibliography\{([^{}]+)\}`)
	figureEnvPattern     = regexp.MustCompile(`(?s)\\begin\{figure\*?\}(.*?)\\end\{figure\*?\}`)
	tableEnvPattern      = regexp.MustCompile(`(?s)\\begin\{table\*?\}(.*?)\\end\{table\*?\}`)
)

// ParseStructure extracts document class, packages, section headings, figures,
// tables, and bibliography information from LaTeX source.
func ParseStructure(content string) Structure {
	var s Structure

	if m := documentClassPattern.FindStringSubmatch(content); m != nil {
		s.DocumentClass = strings.TrimSpace(m[1])
	}

	for _, m := range usePackagePattern.FindAllStringSubmatch(content, -1) {
		// \usepackage{a,b} declares several packages at once.
		for _, name := range strings.Split(m[1], ",") {
			if name = strings.TrimSpace(name); name != "" {
				s.Packages = append(s.Packages, name)
			}
		}
	}

	for _, m := range sectionPattern.FindAllStringSubmatch(content, -1) {
		level := 0
		if m[1] != "" {
			level++
		}
		if m[2] != "" {
			level++
		}
		s.Sections = append(s.Sections, Section{Title: strings.TrimSpace(m[3]), Level: level})
	}

	for _, env := range figureEnvPattern.FindAllStringSubmatch(content, -1) {
		fig := Figure{}
		if m := graphicsPattern.FindStringSubmatch(env[1]); m != nil {
			fig.Path = strings.TrimSpace(m[1])
		}
		if m := captionPattern.FindStringSubmatch(env[1]); m != nil {
			fig.Caption = strings.TrimSpace(m[1])
		}
		if m := labelPattern.FindStringSubmatch(env[1]); m != nil {
			fig.Label = strings.TrimSpace(m[1])
		}
		if fig.Path != "" || fig.Caption != "" {
			s.Figures = append(s.Figures, fig)
		}
	}

	for _, env := range tableEnvPattern.FindAllStringSubmatch(content, -1) {
		tbl := Table{}
		if m := captionPattern.FindStringSubmatch(env[1]); m != nil {
			tbl.Caption = strings.TrimSpace(m[1])
		}
		if m := labelPattern.FindStringSubmatch(env[1]); m != nil {
			tbl.Label = strings.TrimSpace(m[1])
		}
		if m := tabularPattern.FindStringSubmatch(env[1]); m != nil {
			tbl.Columns = countColumns(m[1])
		}
		s.Tables = append(s.Tables, tbl)
	}

	if m := bibStylePattern.FindStringSubmatch(content); m != nil {
		s.BibliographyStyle = strings.TrimSpace(m[1])
	}
	if m := bibFilePattern.FindStringSubmatch(content); m != nil {
		s.BibliographyFile = strings.TrimSpace(m[1])
	}

	return s
}

// braceGroupPattern strips width arguments like {2cm} from tabular preambles
// before column counting.
var braceGroupPattern = regexp.MustCompile(`\{[^{}]*\}`)

// countColumns counts column specifiers in a tabular preamble, ignoring
// separators and width arguments.
func countColumns(spec string) int {
	spec = braceGroupPattern.ReplaceAllString(spec, "")
	count := 0
	for _, c := range spec {
		switch c {
		case 'l', 'c', 'r', 'p', 'm', 'b', 'X':
			count++
		}
	}
	return count
}

// mathPackages, figurePackages, and algorithmPackages drive tag derivation.
var (
	mathPackages      = map[string]bool{"amsmath": true, "amssymb": true, "mathtools": true}
	figurePackages    = map[string]bool{"graphicx": true, "graphics": true, "tikz": true}
	algorithmPackages = map[string]bool{"algorithm": true, "algorithmic": true, "algorithm2e": true, "algpseudocode": true}
)

// DeriveTags produces the fixed tag set for a parsed structure: the document
// class plus presence markers for math, figures, and algorithms.
func DeriveTags(s Structure) []string {
	var tags []string
	if s.DocumentClass != "" {
		tags = append(tags, s.DocumentClass)
	}

	hasMath, hasFigures, hasAlgorithms := false, false, false
	for _, p := range s.Packages {
		if mathPackages[p] {
			hasMath = true
		}
		if figurePackages[p] {
			hasFigures = true
		}
		if algorithmPackages[p] {
			hasAlgorithms = true
		}
	}

	if hasMath {
		tags = append(tags, "math")
	}
	if hasFigures || len(s.Figures) > 0 {
		tags = append(tags, "figures")
	}
	if hasAlgorithms {
		tags = append(tags, "algorithms")
	}
	return tags
}
