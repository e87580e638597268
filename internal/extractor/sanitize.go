// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"path"
	"regexp"
	"strings"
)

// Fixed placeholders written by RemovePersonalInfo. Each is a fixed point of
// its replacing pattern, which is what makes the pass idempotent.
const (
	placeholderAuthor      = "Author Name"
	placeholderEmail       = "author@example.com"
	placeholderAffiliation = "Institution Name"
	placeholderTitle       = "Paper Title"
)

var (
	emailPattern       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	authorCmdPattern   = regexp.MustCompile(`\\author\{[^{}]*\}`)
	titleCmdPattern    = regexp.MustCompile(`\\title(\[[^\]]*\])?\{[^{}]*\}`)
	affiliationPattern = regexp.MustCompile(`\\(affiliation|affil|institute|institution|address)\{[^{}]*\}`)
	includePattern     = regexp.MustCompile(`\\(includegraphics(?:\[[^\]]*\])?|input|include)\{([^{}]+)\}`)
)

// RemovePersonalInfo replaces author names, email addresses, institutional
// affiliations, and paper titles with fixed placeholders. The transformation
// is deterministic and idempotent: applying it to already-sanitized content
// is a no-op.
func RemovePersonalInfo(content string) string {
	content = titleCmdPattern.ReplaceAllString(content, `\title{`+placeholderTitle+`}`)
	content = authorCmdPattern.ReplaceAllString(content, `\author{`+placeholderAuthor+`}`)
	content = affiliationPattern.ReplaceAllString(content, `\$1{`+placeholderAffiliation+`}`)
	content = emailPattern.ReplaceAllString(content, placeholderEmail)
	return content
}

// GeneralizePaths rewrites file-system paths inside include and graphics
// directives to be relative. Absolute paths keep only their final two
// components (directory and file), home-relative paths are stripped of the
// prefix. Already-relative paths pass through unchanged, so the pass is
// idempotent.
func GeneralizePaths(content string) string {
	return includePattern.ReplaceAllStringFunc(content, func(match string) string {
		m := includePattern.FindStringSubmatch(match)
		return `\` + m[1] + `{` + relativize(m[2]) + `}`
	})
}

func relativize(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~") {
		p = strings.TrimLeft(p[1:], "/")
	}
	if !strings.HasPrefix(p, "/") {
		return p
	}

	clean := path.Clean(p)
	dir, file := path.Split(clean)
	parent := path.Base(strings.TrimSuffix(dir, "/"))
	if parent == "" || parent == "/" || parent == "." {
		return file
	}
	return parent + "/" + file
}
