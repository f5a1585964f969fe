// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pubdigest/internal/summary"
	"github.com/pdiddy/pubdigest/pkg/types"
)

// RenderObsidian produces an Obsidian-flavored Markdown document: a YAML
// front-matter block, hashtag topic tags, and a horizontal rule before
// each paper rather than after it.
func RenderObsidian(papers []types.Paper, title string) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", title)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*Generated by [pubdigest](%s)*\n\n", attributionURL)

	for _, paper := range sortByTitle(papers) {
		writeObsidianPaper(&b, paper)
	}

	return b.String()
}

func writeObsidianPaper(b *strings.Builder, paper types.Paper) {
	b.WriteString("---\n\n")
	fmt.Fprintf(b, "### %s\n\n", paper.Title)

	parsed := summary.Parse(paper.Summary)
	if len(parsed.Topics) > 0 {
		tags := make([]string, len(parsed.Topics))
		for i, topic := range parsed.Topics {
			tags[i] = "#" + summary.Slug(topic)
		}
		fmt.Fprintf(b, "**Topics:** %s\n\n", strings.Join(tags, ", "))
	}
	if parsed.TLDR != "" {
		fmt.Fprintf(b, "#### TL;DR\n\n%s\n\n", parsed.TLDR)
	}
	if parsed.Summary != "" {
		fmt.Fprintf(b, "#### Summary\n\n%s\n\n", parsed.Summary)
	}

	if paper.PDFURL != "" {
		fmt.Fprintf(b, "📄 [Paper Link](%s)\n\n", paper.PDFURL)
	}
}
