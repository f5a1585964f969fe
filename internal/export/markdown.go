// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders stored papers into shareable documents and
// writes them to disk. Three formats are supported: plain Markdown,
// Obsidian-flavored Markdown, and a self-contained searchable HTML page.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/pubdigest/internal/summary"
	"github.com/pdiddy/pubdigest/pkg/types"
)

const attributionURL = "https://github.com/pdiddy/pubdigest"

// sortByTitle returns the papers ordered by case-insensitive title,
// leaving the input slice untouched.
func sortByTitle(papers []types.Paper) []types.Paper {
	sorted := make([]types.Paper, len(papers))
	copy(sorted, papers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})
	return sorted
}

// RenderMarkdown produces a plain Markdown document from the papers.
// Papers are ordered by title; the now argument feeds the generation
// timestamp in the attribution line.
func RenderMarkdown(papers []types.Paper, title string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "*Generated on %s by [pubdigest](%s)*\n\n",
		now.Format("2006-01-02 15:04:05"), attributionURL)

	for _, paper := range sortByTitle(papers) {
		writeMarkdownPaper(&b, paper)
	}

	return b.String()
}

func writeMarkdownPaper(b *strings.Builder, paper types.Paper) {
	fmt.Fprintf(b, "## %s\n\n", paper.Title)

	parsed := summary.Parse(paper.Summary)
	if len(parsed.Topics) > 0 {
		fmt.Fprintf(b, "### Topics\n\n%s\n\n", strings.Join(parsed.Topics, ", "))
	}
	if parsed.TLDR != "" {
		fmt.Fprintf(b, "### TL;DR\n\n%s\n\n", parsed.TLDR)
	}
	if parsed.Summary != "" {
		fmt.Fprintf(b, "### Summary\n\n%s\n\n", parsed.Summary)
	}

	if paper.PDFURL != "" {
		fmt.Fprintf(b, "**Paper URL**: [%s](%s)\n\n", paper.PDFURL, paper.PDFURL)
	}

	b.WriteString("---\n\n")
}
