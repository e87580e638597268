// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolver

import (
	"regexp"
	"strings"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// arxivShapePattern matches bare arXiv ids like "2301.00001", optionally
// versioned, and the "arXiv:" prefixed form.
var arxivShapePattern = regexp.MustCompile(`^(?:arXiv:|arxiv:)?(\d{4}\.\d{4,5}(?:v\d+)?)$`)

// DetectSource infers a template's source from the syntax of its id:
// "overleaf:"-prefixed ids and catalog URLs come from the remote catalog,
// "arxiv:"-prefixed ids and bare arXiv-shaped ids come from paper extraction,
// and everything else is looked up in the local cache.
func DetectSource(id string) types.TemplateSource {
	id = strings.TrimSpace(id)

	if strings.HasPrefix(id, "overleaf:") ||
		strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return types.SourceRemoteCatalog
	}
	if arxivShapePattern.MatchString(id) {
		return types.SourcePaperExtracted
	}
	return types.SourceLocalCache
}

// arxivPaperID strips the optional "arxiv:" prefix and returns the bare paper
// id, or "" if the id is not arXiv-shaped.
func arxivPaperID(id string) string {
	if m := arxivShapePattern.FindStringSubmatch(strings.TrimSpace(id)); m != nil {
		return m[1]
	}
	return ""
}
