// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructure(t *testing.T) {
	s := ParseStructure(sampleDocument)

	assert.Equal(t, "article", s.DocumentClass)
	assert.Equal(t, []string{"amsmath", "graphicx"}, s.Packages)

	require.Len(t, s.Sections, 3)
	assert.Equal(t, Section{Title: "Introduction", Level: 0}, s.Sections[0])
	assert.Equal(t, Section{Title: "Contributions", Level: 1}, s.Sections[1])
	assert.Equal(t, Section{Title: "Method", Level: 0}, s.Sections[2])

	require.Len(t, s.Figures, 1)
	assert.Equal(t, Figure{Path: "figures/arch.png", Caption: "Architecture.", Label: "fig:arch"}, s.Figures[0])

	assert.Equal(t, "plain", s.BibliographyStyle)
	assert.Equal(t, "refs", s.BibliographyFile)
}

func TestParseStructureTables(t *testing.T) {
	content := `\documentclass{article}
\begin{document}
\begin{table}
\caption{Main results.}
\label{tab:results}
\begin{tabular}{lcc}
a & b & c \\
\end{tabular}
\end{table}
\end{document}`

	s := ParseStructure(content)
	require.Len(t, s.Tables, 1)
	assert.Equal(t, Table{Caption: "Main results.", Label: "tab:results", Columns: 3}, s.Tables[0])
}

func TestParseStructureCombinedPackages(t *testing.T) {
	s := ParseStructure(`\usepackage{amsmath, amssymb,graphicx}`)
	assert.Equal(t, []string{"amsmath", "amssymb", "graphicx"}, s.Packages)
}

func TestParseStructureSubsubsection(t *testing.T) {
	s := ParseStructure(`\subsubsection{Deep Detail}`)
	require.Len(t, s.Sections, 1)
	assert.Equal(t, 2, s.Sections[0].Level)
}

func TestParseStructureEmptyInput(t *testing.T) {
	s := ParseStructure("")
	assert.Empty(t, s.DocumentClass)
	assert.Empty(t, s.Sections)
	assert.Empty(t, s.Figures)
	assert.Empty(t, s.Tables)
}

func TestCountColumns(t *testing.T) {
	tests := []struct {
		spec string
		want int
	}{
		{"lcc", 3},
		{"|l|c|r|", 3},
		{"p{2cm}c", 2},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, countColumns(tt.spec), "spec %q", tt.spec)
	}
}

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		name string
		s    Structure
		want []string
	}{
		{
			"class only",
			Structure{DocumentClass: "report"},
			[]string{"report"},
		},
		{
			"math and algorithms",
			Structure{DocumentClass: "article", Packages: []string{"amsmath", "algorithm2e"}},
			[]string{"article", "math", "algorithms"},
		},
		{
			"figures from environments without graphicx",
			Structure{DocumentClass: "article", Figures: []Figure{{Path: "a.png"}}},
			[]string{"article", "figures"},
		},
		{
			"empty structure",
			Structure{},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTags(tt.s))
		})
	}
}
