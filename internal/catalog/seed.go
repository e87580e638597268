// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"time"

	"github.com/pdiddy/submission-engine/pkg/types"
)

// seedCatalog returns the fixed template records the adapter serves. The set
// covers the common publisher families so search filtering has real variety
// to work against.
func seedCatalog() []types.TemplateRecord {
	return []types.TemplateRecord{
		{
			ID:     "overleaf:ieee-conference",
			Name:   "IEEE Conference Template",
			Source: types.SourceRemoteCatalog,
			Files: []types.TemplateFile{
				{Path: "main.tex", Content: ieeeConferenceMain, Kind: types.KindDocument, Required: true},
				{Path: "IEEEtran.cls", Content: "% IEEEtran document class stub\n", Kind: types.KindDocumentClass},
				{Path: "references.bib", Content: "", Kind: types.KindBibliography},
			},
			Metadata: types.TemplateMetadata{
				Version:      "1.8b",
				Authors:      []string{"IEEE Publication Technology Group"},
				License:      "LPPL-1.3c",
				Journal:      "IEEE Conference Proceedings",
				Publisher:    "IEEE",
				Categories:   []string{"conference", "engineering"},
				Description:  "Two-column IEEE conference paper template with IEEEtran class.",
				Tags:         []string{"two-column", "conference", "ieee"},
				LastModified: date(2025, 8, 12),
				Popularity:   48210,
				Rating:       4.8,
			},
			LastUpdated: date(2025, 8, 12),
		},
		{
			ID:     "overleaf:acm-sigconf",
			Name:   "ACM SIGCONF Proceedings",
			Source: types.SourceRemoteCatalog,
			Files: []types.TemplateFile{
				{Path: "main.tex", Content: acmSigconfMain, Kind: types.KindDocument, Required: true},
				{Path: "acmart.cls", Content: "% acmart document class stub\n", Kind: types.KindDocumentClass},
				{Path: "references.bib", Content: "", Kind: types.KindBibliography},
			},
			Metadata: types.TemplateMetadata{
				Version:      "2.06",
				Authors:      []string{"Association for Computing Machinery"},
				License:      "LPPL-1.3c",
				Journal:      "ACM Conference Proceedings",
				Publisher:    "ACM",
				Categories:   []string{"conference", "computer-science"},
				Description:  "ACM primary article template in the sigconf style.",
				Tags:         []string{"two-column", "conference", "acm"},
				LastModified: date(2025, 6, 3),
				Popularity:   39775,
				Rating:       4.7,
			},
			LastUpdated: date(2025, 6, 3),
		},
		{
			ID:     "overleaf:elsevier-article",
			Name:   "Elsevier Journal Article",
			Source: types.SourceRemoteCatalog,
			Files: []types.TemplateFile{
				{Path: "main.tex", Content: elsevierMain, Kind: types.KindDocument, Required: true},
				{Path: "elsarticle.cls", Content: "% elsarticle document class stub\n", Kind: types.KindDocumentClass},
				{Path: "elsarticle-num.bst", Content: "% numeric bibliography style stub\n", Kind: types.KindStyle},
				{Path: "references.bib", Content: "", Kind: types.KindBibliography},
			},
			Metadata: types.TemplateMetadata{
				Version:      "3.3",
				Authors:      []string{"Elsevier"},
				License:      "LPPL-1.2",
				Journal:      "Elsevier Journals",
				Publisher:    "Elsevier",
				Categories:   []string{"journal"},
				Description:  "Single-column elsarticle template for Elsevier journal submissions.",
				Tags:         []string{"single-column", "journal", "elsevier"},
				LastModified: date(2025, 3, 21),
				Popularity:   27654,
				Rating:       4.4,
			},
			LastUpdated: date(2025, 3, 21),
		},
		{
			ID:     "overleaf:springer-lncs",
			Name:   "Springer LNCS Proceedings",
			Source: types.SourceRemoteCatalog,
			Files: []types.TemplateFile{
				{Path: "main.tex", Content: springerLncsMain, Kind: types.KindDocument, Required: true},
				{Path: "llncs.cls", Content: "% llncs document class stub\n", Kind: types.KindDocumentClass},
				{Path: "splncs04.bst", Content: "% splncs04 bibliography style stub\n", Kind: types.KindStyle},
				{Path: "references.bib", Content: "", Kind: types.KindBibliography},
			},
			Metadata: types.TemplateMetadata{
				Version:      "2.21",
				Authors:      []string{"Springer Nature"},
				License:      "LPPL-1.3c",
				Journal:      "Lecture Notes in Computer Science",
				Publisher:    "Springer",
				Categories:   []string{"conference", "computer-science"},
				Description:  "Springer Lecture Notes in Computer Science proceedings template.",
				Tags:         []string{"single-column", "conference", "springer"},
				LastModified: date(2024, 11, 8),
				Popularity:   22408,
				Rating:       4.5,
			},
			LastUpdated: date(2024, 11, 8),
		},
		{
			ID:     "overleaf:nature-article",
			Name:   "Nature Research Article",
			Source: types.SourceRemoteCatalog,
			Files: []types.TemplateFile{
				{Path: "main.tex", Content: natureMain, Kind: types.KindDocument, Required: true},
				{Path: "sn-jnl.cls", Content: "% Springer Nature journal class stub\n", Kind: types.KindDocumentClass},
				{Path: "references.bib", Content: "", Kind: types.KindBibliography},
			},
			Metadata: types.TemplateMetadata{
				Version:      "1.2",
				Authors:      []string{"Springer Nature"},
				License:      "CC-BY-4.0",
				Journal:      "Nature",
				Publisher:    "Springer Nature",
				Categories:   []string{"journal", "life-sciences"},
				Description:  "Springer Nature journal article template used for Nature submissions.",
				Tags:         []string{"single-column", "journal", "nature"},
				LastModified: date(2025, 1, 30),
				Popularity:   18934,
				Rating:       4.3,
			},
			LastUpdated: date(2025, 1, 30),
		},
		{
			ID:     "overleaf:mdpi-article",
			Name:   "MDPI Journal Article",
			Source: types.SourceRemoteCatalog,
			Files: []types.TemplateFile{
				{Path: "main.tex", Content: mdpiMain, Kind: types.KindDocument, Required: true},
				{Path: "mdpi.cls", Content: "% MDPI document class stub\n", Kind: types.KindDocumentClass},
				{Path: "references.bib", Content: "", Kind: types.KindBibliography},
			},
			Metadata: types.TemplateMetadata{
				Version:      "4.1",
				Authors:      []string{"MDPI"},
				License:      "LPPL-1.3c",
				Journal:      "MDPI Journals",
				Publisher:    "MDPI",
				Categories:   []string{"journal", "open-access"},
				Description:  "MDPI open-access journal article template.",
				Tags:         []string{"single-column", "journal", "open-access"},
				LastModified: date(2025, 5, 17),
				Popularity:   9120,
				Rating:       3.9,
			},
			LastUpdated: date(2025, 5, 17),
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const ieeeConferenceMain = `\documentclass[conference]{IEEEtran}
\usepackage{amsmath}
\usepackage{graphicx}
\usepackage{cite}

\title{{{PROJECT_NAME}}}
\author{\IEEEauthorblockN{{{AUTHOR_NAME}}}
\IEEEauthorblockA{{{AUTHOR_AFFILIATION}}\\
{{AUTHOR_EMAIL}}}}

\begin{document}
\maketitle

\begin{abstract}
{{ABSTRACT}}
\end{abstract}

\begin{IEEEkeywords}
{{KEYWORDS}}
\end{IEEEkeywords}

\section{Introduction}

\section{Related Work}

\section{Method}

\section{Evaluation}

\section{Conclusion}

\bibliographystyle{IEEEtran}
\bibliography{references}

\end{document}
`

const acmSigconfMain = `\documentclass[sigconf]{acmart}
\usepackage{graphicx}

\title{{{PROJECT_NAME}}}
\author{{{AUTHOR_NAME}}}
\affiliation{\institution{{{AUTHOR_AFFILIATION}}}}
\email{{{AUTHOR_EMAIL}}}

\begin{document}

\begin{abstract}
{{ABSTRACT}}
\end{abstract}

\keywords{{{KEYWORDS}}}

\maketitle

\section{Introduction}

\section{Approach}

\section{Results}

\section{Conclusions}

\bibliographystyle{ACM-Reference-Format}
\bibliography{references}

\end{document}
`

const elsevierMain = `\documentclass[preprint,12pt]{elsarticle}
\usepackage{amsmath}
\usepackage{graphicx}

\begin{document}

\begin{frontmatter}
\title{{{PROJECT_NAME}}}
\author{{{AUTHOR_NAME}}}
\affiliation{organization={{{AUTHOR_AFFILIATION}}}}

\begin{abstract}
{{ABSTRACT}}
\end{abstract}

\begin{keyword}
{{KEYWORDS}}
\end{keyword}
\end{frontmatter}

\section{Introduction}

\section{Materials and Methods}

\section{Results and Discussion}

\section{Conclusions}

\bibliographystyle{elsarticle-num}
\bibliography{references}

\end{document}
`

const springerLncsMain = `\documentclass{llncs}
\usepackage{graphicx}

\title{{{PROJECT_NAME}}}
\author{{{AUTHOR_NAME}}}
\institute{{{AUTHOR_AFFILIATION}}\\
\email{{{AUTHOR_EMAIL}}}}

\begin{document}
\maketitle

\begin{abstract}
{{ABSTRACT}}
\keywords{{{KEYWORDS}}}
\end{abstract}

\section{Introduction}

\section{Background}

\section{Contribution}

\section{Conclusion}

\bibliographystyle{splncs04}
\bibliography{references}

\end{document}
`

const natureMain = `\documentclass[sn-nature]{sn-jnl}
\usepackage{graphicx}

\title[Article Title]{{{PROJECT_NAME}}}
\author{{{AUTHOR_NAME}}}
\affil{{{AUTHOR_AFFILIATION}}}

\begin{document}

\abstract{{{ABSTRACT}}}

\keywords{{{KEYWORDS}}}

\maketitle

\section{Introduction}

\section{Results}

\section{Discussion}

\section{Methods}

\bibliography{references}

\end{document}
`

const mdpiMain = `\documentclass[journal,article,submit,moreauthors]{mdpi}

\Title{{{PROJECT_NAME}}}
\Author{{{AUTHOR_NAME}}}
\address{{{AUTHOR_AFFILIATION}}}
\corres{{{AUTHOR_EMAIL}}}

\abstract{{{ABSTRACT}}}
\keyword{{{KEYWORDS}}}

\begin{document}

\section{Introduction}

\section{Materials and Methods}

\section{Results}

\section{Discussion}

\section{Conclusions}

\bibliography{references}

\end{document}
`
