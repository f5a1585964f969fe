// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary extracts labeled sections from free-text paper
// annotations. Annotations carry zero or more bracket-delimited sections
// ([Topics:], [TL;DR:], [Summary:]); everything outside a recognized
// section is ignored.
package summary

import (
	"strings"

	"github.com/pdiddy/pubdigest/pkg/types"
)

// Section labels as they appear after splitting on '['. Matching is
// case-insensitive.
const (
	topicsLabel  = "topics:]"
	tldrLabel    = "tl;dr:]"
	summaryLabel = "summary:]"
)

// Parse extracts the Topics, TL;DR, and Summary sections from a raw
// annotation string. It never fails: unrecognized sections are discarded
// and a string with no recognized labels yields an all-empty result.
// When the same label appears more than once, the last occurrence wins.
func Parse(raw string) types.ParsedSummary {
	var parsed types.ParsedSummary
	if raw == "" {
		return parsed
	}

	// Bold markers are styling artifacts from the source annotation and
	// never part of section content.
	clean := strings.ReplaceAll(raw, "**", "")
	clean = strings.ReplaceAll(clean, "__", "")

	for _, section := range strings.Split(clean, "[") {
		lower := strings.ToLower(section)
		switch {
		case strings.HasPrefix(lower, topicsLabel):
			parsed.Topics = splitTopics(stripLabel(section, topicsLabel))
		case strings.HasPrefix(lower, tldrLabel):
			parsed.TLDR = stripLabel(section, tldrLabel)
		case strings.HasPrefix(lower, summaryLabel):
			parsed.Summary = stripLabel(section, summaryLabel)
		}
	}

	return parsed
}

// stripLabel removes the already-matched label prefix and surrounding
// whitespace.
func stripLabel(section, label string) string {
	return strings.TrimSpace(section[len(label):])
}

// splitTopics turns the topics section text into individual tags.
func splitTopics(text string) []string {
	if text == "" {
		return nil
	}
	var topics []string
	for _, t := range strings.Split(text, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// Slug converts a topic to a tag-safe form: internal spaces become
// hyphens, apostrophes are removed, and the result is lower-cased.
// "Graph Neural Networks" becomes "graph-neural-networks".
func Slug(topic string) string {
	s := strings.ReplaceAll(topic, " ", "-")
	s = strings.ReplaceAll(s, "'", "")
	return strings.ToLower(s)
}
