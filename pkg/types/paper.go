// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Paper holds one stored research-paper record.
type Paper struct {
	// ID is a slug derived from the paper identifier (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title. Titles are the primary sort key for
	// exported documents (case-insensitive ascending).
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Date is the publication or preprint date.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`

	// Summary is a free-text annotation. It may contain bracket-delimited
	// [Topics:], [TL;DR:], and [Summary:] sections; see the summary package.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// PDFURL is the URL of the paper PDF, if known.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// Source identifies where the record came from (e.g. "arxiv", "manual").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ParsedSummary is the Topics/TL;DR/Summary triple extracted from a
// Paper's summary annotation. All fields may be empty.
type ParsedSummary struct {
	Topics  []string `json:"topics" yaml:"topics"`
	TLDR    string   `json:"tldr" yaml:"tldr"`
	Summary string   `json:"summary" yaml:"summary"`
}

// ExportFormat selects the export output format.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatObsidian ExportFormat = "obsidian"
	FormatHTML     ExportFormat = "html"
)
