// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Status reports the outcome of a source download.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// BundleFile is one file in a downloaded source bundle. Files are classified
// later, during extraction.
type BundleFile struct {
	Path    string
	Content string
}

// DownloadResult is the paper repository's response to a source request.
type DownloadResult struct {
	Status Status
	Error  string
	Files  []BundleFile
}

// PaperMetadata is one metadata search hit.
type PaperMetadata struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
}

// Repository is the external paper-repository collaborator. Production code
// uses the simulated implementation; tests supply fakes.
type Repository interface {
	// DownloadSource obtains the source bundle for a paper.
	DownloadSource(paperID string) (DownloadResult, error)

	// SearchMetadata returns up to maxResults metadata hits for a query.
	SearchMetadata(query string, maxResults int) ([]PaperMetadata, error)
}

// downloadLatency simulates the remote round trip. Tests zero this.
var downloadLatency = 200 * time.Millisecond

// arxivIDPattern matches the modern arXiv id shape: "2301.00001",
// optionally versioned.
var arxivIDPattern = regexp.MustCompile(`^\d{4}\.\d{4,5}(?:v\d+)?$`)

// SimulatedRepository generates deterministic source bundles in-process,
// standing in for a real paper repository. Well-formed arXiv ids succeed;
// anything else reports a failed download.
type SimulatedRepository struct{}

// NewSimulatedRepository returns the in-process repository stand-in.
func NewSimulatedRepository() *SimulatedRepository {
	return &SimulatedRepository{}
}

// DownloadSource returns a generated bundle for a well-formed arXiv id. The
// bundle content is a function of the id only, so repeated downloads are
// identical.
func (r *SimulatedRepository) DownloadSource(paperID string) (DownloadResult, error) {
	if downloadLatency > 0 {
		time.Sleep(downloadLatency)
	}

	if !arxivIDPattern.MatchString(paperID) {
		return DownloadResult{
			Status: StatusFailed,
			Error:  fmt.Sprintf("no source found for %q", paperID),
		}, nil
	}

	return DownloadResult{
		Status: StatusSuccess,
		Files: []BundleFile{
			{Path: "main.tex", Content: simulatedMain(paperID)},
			{Path: "refs.bib", Content: simulatedBib(paperID)},
			{Path: "figures/architecture.png", Content: ""},
		},
	}, nil
}

// SearchMetadata returns a single generated hit echoing the query.
func (r *SimulatedRepository) SearchMetadata(query string, maxResults int) ([]PaperMetadata, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	hit := PaperMetadata{
		ID:       "2301.00001",
		Title:    "On " + query,
		Authors:  []string{"J. Doe", "A. Smith"},
		Abstract: "A generated abstract for the query: " + query + ".",
	}
	return []PaperMetadata{hit}, nil
}

func simulatedMain(paperID string) string {
	var b strings.Builder
	b.WriteString("\\documentclass[11pt]{article}\n")
	b.WriteString("\\usepackage{amsmath}\n")
	b.WriteString("\\usepackage{graphicx}\n")
	b.WriteString("\\usepackage{algorithm}\n\n")
	fmt.Fprintf(&b, "\\title{Source Paper %s}\n", paperID)
	b.WriteString("\\author{Jane Researcher \\\\ University of Somewhere \\\\ jane.researcher@somewhere.edu}\n\n")
	b.WriteString("\\begin{document}\n\\maketitle\n\n")
	b.WriteString("\\begin{abstract}\nWe study an interesting problem.\n\\end{abstract}\n\n")
	b.WriteString("\\section{Introduction}\nMotivation and contributions.\n\n")
	b.WriteString("\\subsection{Contributions}\nA list of contributions.\n\n")
	b.WriteString("\\section{Method}\n")
	b.WriteString("\\begin{figure}\n")
	b.WriteString("\\includegraphics[width=\\linewidth]{/home/jane/papers/figures/architecture.png}\n")
	b.WriteString("\\caption{System architecture.}\n\\label{fig:arch}\n\\end{figure}\n\n")
	b.WriteString("\\section{Evaluation}\n")
	b.WriteString("\\begin{table}\n\\caption{Main results.}\n\\label{tab:results}\n")
	b.WriteString("\\begin{tabular}{lcc}\nMethod & Accuracy & Latency \\\\\n\\end{tabular}\n\\end{table}\n\n")
	b.WriteString("\\section{Conclusion}\nClosing remarks.\n\n")
	b.WriteString("\\bibliographystyle{plain}\n\\bibliography{refs}\n\n")
	b.WriteString("\\end{document}\n")
	return b.String()
}

func simulatedBib(paperID string) string {
	return fmt.Sprintf("@article{source%s,\n  title = {A Related Work},\n  author = {Doe, John},\n  year = {2023},\n}\n",
		strings.ReplaceAll(paperID, ".", ""))
}
