// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/submission-engine/pkg/types"
)

func init() {
	downloadLatency = 0
}

// fakeRepository returns canned download results and counts calls.
type fakeRepository struct {
	result DownloadResult
	err    error
	calls  int
}

func (f *fakeRepository) DownloadSource(paperID string) (DownloadResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeRepository) SearchMetadata(query string, maxResults int) ([]PaperMetadata, error) {
	return nil, nil
}

const sampleDocument = `\documentclass[11pt]{article}
\usepackage{amsmath}
\usepackage{graphicx}
\title{A Study of Things}
\author{Jane Researcher}
\begin{document}
\section{Introduction}
\subsection{Contributions}
\section{Method}
\begin{figure}
\includegraphics{figures/arch.png}
\caption{Architecture.}
\label{fig:arch}
\end{figure}
\bibliographystyle{plain}
\bibliography{refs}
\end{document}
`

func TestExtractBuildsTemplate(t *testing.T) {
	repo := &fakeRepository{result: DownloadResult{
		Status: StatusSuccess,
		Files: []BundleFile{
			{Path: "notes.txt", Content: "scratch"},
			{Path: "main.tex", Content: sampleDocument},
			{Path: "refs.bib", Content: "@article{x, title={X}}"},
		},
	}}

	record, err := New(repo).Extract("2301.00001", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "arxiv-2301.00001", record.ID)
	assert.Equal(t, types.SourcePaperExtracted, record.Source)

	main := record.MainFile()
	require.NotNil(t, main)
	assert.Equal(t, "main.tex", main.Path, "the documentclass file is the entry point")

	assert.Contains(t, record.Metadata.Tags, "article")
	assert.Contains(t, record.Metadata.Tags, "math")
	assert.Contains(t, record.Metadata.Tags, "figures")
}

func TestExtractIDIsDeterministic(t *testing.T) {
	repo := &fakeRepository{result: DownloadResult{
		Status: StatusSuccess,
		Files:  []BundleFile{{Path: "main.tex", Content: sampleDocument}},
	}}
	e := New(repo)

	first, err := e.Extract("2301.00001", DefaultOptions())
	require.NoError(t, err)
	second, err := e.Extract("2301.00001", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Files, second.Files)
}

func TestExtractFailedDownload(t *testing.T) {
	repo := &fakeRepository{result: DownloadResult{Status: StatusFailed, Error: "not found"}}

	_, err := New(repo).Extract("9999.99999", DefaultOptions())
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "9999.99999", extractionErr.PaperID)
	assert.Contains(t, err.Error(), "not found")
}

func TestExtractNoMainFile(t *testing.T) {
	repo := &fakeRepository{result: DownloadResult{
		Status: StatusSuccess,
		Files: []BundleFile{
			{Path: "README.md", Content: "readme"},
			{Path: "data.csv", Content: "a,b"},
		},
	}}

	_, err := New(repo).Extract("2301.00001", DefaultOptions())
	assert.ErrorIs(t, err, ErrNoMainFile)
}

func TestExtractFallsBackToDocumentTypedFile(t *testing.T) {
	// No documentclass declaration anywhere: the first .tex file wins.
	repo := &fakeRepository{result: DownloadResult{
		Status: StatusSuccess,
		Files: []BundleFile{
			{Path: "README.md", Content: "readme"},
			{Path: "body.tex", Content: "\\section{Loose Section}"},
		},
	}}

	record, err := New(repo).Extract("2301.00001", DefaultOptions())
	require.NoError(t, err)
	main := record.MainFile()
	require.NotNil(t, main)
	assert.Equal(t, "body.tex", main.Path)
}

func TestExtractSanitizesContent(t *testing.T) {
	repo := &fakeRepository{result: DownloadResult{
		Status: StatusSuccess,
		Files: []BundleFile{{
			Path: "main.tex",
			Content: `\documentclass{article}
\title{Secret Project}
\author{Jane Researcher}
\institute{University of Somewhere}
Contact: jane.researcher@somewhere.edu
\includegraphics{/home/jane/figs/plot.png}
`,
		}},
	}}

	record, err := New(repo).Extract("2301.00001", DefaultOptions())
	require.NoError(t, err)

	content := record.Files[0].Content
	assert.NotContains(t, content, "Jane Researcher")
	assert.NotContains(t, content, "jane.researcher@somewhere.edu")
	assert.NotContains(t, content, "Secret Project")
	assert.NotContains(t, content, "/home/jane")
	assert.Contains(t, content, `\includegraphics{figs/plot.png}`)
}

func TestExtractKeepsContentWhenSanitizationDisabled(t *testing.T) {
	repo := &fakeRepository{result: DownloadResult{
		Status: StatusSuccess,
		Files:  []BundleFile{{Path: "main.tex", Content: sampleDocument}},
	}}

	record, err := New(repo).Extract("2301.00001", types.ExtractOptions{})
	require.NoError(t, err)
	assert.Contains(t, record.Files[0].Content, "Jane Researcher")
}

func TestExtractPropagatesRepositoryError(t *testing.T) {
	repo := &fakeRepository{err: errors.New("network down")}
	_, err := New(repo).Extract("2301.00001", DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
}

func TestSimulatedRepositoryRejectsMalformedIDs(t *testing.T) {
	repo := NewSimulatedRepository()

	result, err := repo.DownloadSource("not-an-arxiv-id")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.Status)

	result, err = repo.DownloadSource("2301.00001")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	require.NotEmpty(t, result.Files)
}

func TestSimulatedBundleExtractsCleanly(t *testing.T) {
	e := New(NewSimulatedRepository())

	record, err := e.Extract("2301.07041", DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, record.MainFile())
	assert.Contains(t, record.Metadata.Tags, "algorithms")

	// The generated bundle embeds an author email; sanitization must strip it.
	assert.NotContains(t, record.MainFile().Content, "somewhere.edu")
}
