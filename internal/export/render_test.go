package export

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/pubdigest/pkg/types"
)

var frozen = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func betaPaper() types.Paper {
	return types.Paper{
		ID:      "beta",
		Title:   "Beta Paper",
		Summary: "[Topics:] nlp[TL;DR:] short[Summary:] long",
		PDFURL:  "http://x/b.pdf",
	}
}

func alphaPaper() types.Paper {
	return types.Paper{ID: "alpha", Title: "Alpha Paper"}
}

func TestRenderMarkdownScenario(t *testing.T) {
	// Input deliberately out of order; output must sort by title.
	doc := RenderMarkdown([]types.Paper{betaPaper(), alphaPaper()}, "Digest", frozen)

	alphaIdx := strings.Index(doc, "## Alpha Paper")
	betaIdx := strings.Index(doc, "## Beta Paper")
	if alphaIdx < 0 || betaIdx < 0 {
		t.Fatalf("missing paper headings:\n%s", doc)
	}
	if alphaIdx > betaIdx {
		t.Error("Alpha Paper should come before Beta Paper")
	}

	// Alpha has no summary and no URL: heading only between the two papers.
	alphaSection := doc[alphaIdx:betaIdx]
	for _, unwanted := range []string{"### Topics", "### TL;DR", "### Summary", "**Paper URL**"} {
		if strings.Contains(alphaSection, unwanted) {
			t.Errorf("Alpha section should not contain %q:\n%s", unwanted, alphaSection)
		}
	}

	betaSection := doc[betaIdx:]
	for _, wanted := range []string{
		"### Topics\n\nnlp\n",
		"### TL;DR\n\nshort\n",
		"### Summary\n\nlong\n",
		"**Paper URL**: [http://x/b.pdf](http://x/b.pdf)",
	} {
		if !strings.Contains(betaSection, wanted) {
			t.Errorf("Beta section should contain %q:\n%s", wanted, betaSection)
		}
	}
}

func TestRenderMarkdownHeader(t *testing.T) {
	doc := RenderMarkdown([]types.Paper{alphaPaper()}, "My Digest", frozen)

	if !strings.HasPrefix(doc, "# My Digest\n\n") {
		t.Errorf("document should open with the title heading:\n%s", doc)
	}
	if !strings.Contains(doc, "*Generated on 2026-03-14 15:09:26 by [pubdigest]") {
		t.Errorf("attribution line missing or wrong:\n%s", doc)
	}
}

func TestRenderMarkdownSeparatorAfterEachPaper(t *testing.T) {
	doc := RenderMarkdown([]types.Paper{alphaPaper(), betaPaper()}, "Digest", frozen)

	if got := strings.Count(doc, "---\n"); got != 2 {
		t.Errorf("got %d separators, want 2:\n%s", got, doc)
	}
}

func TestRenderMarkdownDeterministic(t *testing.T) {
	papers := []types.Paper{betaPaper(), alphaPaper()}
	if RenderMarkdown(papers, "Digest", frozen) != RenderMarkdown(papers, "Digest", frozen) {
		t.Error("same input and clock should produce identical documents")
	}
}

func TestRenderMarkdownDoesNotMutateInput(t *testing.T) {
	papers := []types.Paper{betaPaper(), alphaPaper()}
	RenderMarkdown(papers, "Digest", frozen)
	if papers[0].Title != "Beta Paper" {
		t.Error("input slice order changed")
	}
}

func TestRenderObsidian(t *testing.T) {
	papers := []types.Paper{
		{
			ID:      "gnn",
			Title:   "A Survey",
			Summary: "[Topics:] Graph Neural Networks, Alice's Method[TL;DR:] tags demo",
			PDFURL:  "http://x/a.pdf",
		},
	}
	doc := RenderObsidian(papers, "Vault Digest")

	if !strings.HasPrefix(doc, "---\ntitle: Vault Digest\n---\n\n") {
		t.Errorf("document should open with front matter:\n%s", doc)
	}
	if !strings.Contains(doc, "**Topics:** #graph-neural-networks, #alices-method\n") {
		t.Errorf("topics should be slugged hashtags:\n%s", doc)
	}
	if !strings.Contains(doc, "#### TL;DR\n\ntags demo\n") {
		t.Errorf("TL;DR section missing:\n%s", doc)
	}
	if !strings.Contains(doc, "📄 [Paper Link](http://x/a.pdf)\n") {
		t.Errorf("paper link missing:\n%s", doc)
	}
	if !strings.Contains(doc, "### A Survey\n") {
		t.Errorf("paper heading should be level three:\n%s", doc)
	}
}

func TestRenderObsidianNoTrailingSeparator(t *testing.T) {
	doc := RenderObsidian([]types.Paper{alphaPaper(), betaPaper()}, "Digest")

	// One rule for the front matter close, then one preceding each paper.
	ruleCount := strings.Count(doc, "---\n")
	if ruleCount != 4 {
		t.Errorf("got %d rules, want 4 (front matter pair + one per paper):\n%s", ruleCount, doc)
	}
	if strings.HasSuffix(strings.TrimSpace(doc), "---") {
		t.Errorf("document should not end with a separator:\n%s", doc)
	}
}

func TestRenderObsidianOmitsEmptySections(t *testing.T) {
	doc := RenderObsidian([]types.Paper{alphaPaper()}, "Digest")

	for _, unwanted := range []string{"**Topics:**", "#### TL;DR", "#### Summary", "Paper Link"} {
		if strings.Contains(doc, unwanted) {
			t.Errorf("document should not contain %q for an empty paper:\n%s", unwanted, doc)
		}
	}
	if !strings.Contains(doc, "### Alpha Paper") {
		t.Errorf("paper heading should be retained:\n%s", doc)
	}
}

func TestRenderHTML(t *testing.T) {
	doc, err := RenderHTML([]types.Paper{betaPaper(), alphaPaper()}, "Web Digest")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("output should be a full HTML document")
	}
	if !strings.Contains(doc, "<title>pubdigest - Web Digest</title>") {
		t.Errorf("page title missing:\n%s", doc[:200])
	}

	// Embedded data array, sorted by title.
	alphaIdx := strings.Index(doc, `"title":"Alpha Paper"`)
	betaIdx := strings.Index(doc, `"title":"Beta Paper"`)
	if alphaIdx < 0 || betaIdx < 0 {
		t.Fatal("embedded papers data missing")
	}
	if alphaIdx > betaIdx {
		t.Error("embedded papers not sorted by title")
	}
	if !strings.Contains(doc, `"topics":["nlp"]`) {
		t.Error("Beta topics missing from embedded data")
	}
	// Papers with no topics embed an empty array, never null.
	if strings.Contains(doc, `"topics":null`) {
		t.Error("empty topics should serialize as [], not null")
	}

	// Client-side contract: search box, three toggles, masonry.
	for _, wanted := range []string{
		`id="searchInput"`, `id="showTopics"`, `id="showTldr"`, `id="showSummary"`,
		"masonry", "filterPapers",
	} {
		if !strings.Contains(doc, wanted) {
			t.Errorf("page should contain %q", wanted)
		}
	}
}

func TestRenderHTMLEscapesTitle(t *testing.T) {
	doc, err := RenderHTML([]types.Paper{alphaPaper()}, `<script>alert("x")</script>`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(doc, `<h1 class="mb-4"><script>`) {
		t.Error("page title must be HTML-escaped")
	}
}
