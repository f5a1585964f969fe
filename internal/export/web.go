// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/pdiddy/pubdigest/internal/summary"
	"github.com/pdiddy/pubdigest/pkg/types"
)

// paperView is the per-paper record embedded in the HTML page for the
// client-side search and filter logic.
type paperView struct {
	Title   string   `json:"title"`
	PDFURL  string   `json:"pdf_url"`
	Topics  []string `json:"topics"`
	TLDR    string   `json:"tldr"`
	Summary string   `json:"summary"`
}

type pageData struct {
	Title  string
	Papers template.JS
}

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateText))

// RenderHTML produces a self-contained HTML page embedding the papers as
// a JSON array plus client-side search, section toggles, and masonry
// layout. Styling and layout libraries are loaded by URL from CDNs.
func RenderHTML(papers []types.Paper, title string) (string, error) {
	views := make([]paperView, 0, len(papers))
	for _, paper := range sortByTitle(papers) {
		parsed := summary.Parse(paper.Summary)
		topics := parsed.Topics
		if topics == nil {
			// The page script iterates topics unconditionally.
			topics = []string{}
		}
		views = append(views, paperView{
			Title:   paper.Title,
			PDFURL:  paper.PDFURL,
			Topics:  topics,
			TLDR:    parsed.TLDR,
			Summary: parsed.Summary,
		})
	}

	payload, err := json.Marshal(views)
	if err != nil {
		return "", fmt.Errorf("marshaling papers: %w", err)
	}

	var buf bytes.Buffer
	data := pageData{Title: title, Papers: template.JS(payload)}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}

	return buf.String(), nil
}

// pageTemplateText is the fixed page shell. The embedded script filters
// papers by case-insensitive substring across title, topics, TL;DR, and
// summary, toggles section visibility per checkbox, and re-runs masonry
// layout on every change.
const pageTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>pubdigest - {{.Title}}</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <script src="https://unpkg.com/masonry-layout@4/dist/masonry.pkgd.min.js"></script>
    <style>
        .filter-controls {
            margin-bottom: 20px;
            padding: 15px;
            background-color: #f8f9fa;
            border-radius: 8px;
        }
        @media (max-width: 991px) {
            .search-box {
                margin-bottom: 15px;
            }
        }
    </style>
</head>
<body>
    <div class="container py-4">
        <h1 class="mb-4">{{.Title}}</h1>
        <p class="text-muted"><em>Generated by <a href="https://github.com/pdiddy/pubdigest">pubdigest</a></em></p>

        <div class="filter-controls">
            <div class="d-flex flex-md-row flex-column gap-3">
                <div class="flex-grow-1">
                    <input type="text" class="form-control search-box" id="searchInput"
                           placeholder="Search in titles, topics, TL;DR, and summaries...">
                </div>
                <div class="btn-group" role="group" aria-label="Section toggles">
                    <input type="checkbox" class="btn-check" id="showTopics" checked autocomplete="off">
                    <label class="btn btn-outline-primary" for="showTopics">Topics</label>

                    <input type="checkbox" class="btn-check" id="showTldr" checked autocomplete="off">
                    <label class="btn btn-outline-primary" for="showTldr">TL;DR</label>

                    <input type="checkbox" class="btn-check" id="showSummary" checked autocomplete="off">
                    <label class="btn btn-outline-primary" for="showSummary">Summary</label>
                </div>
            </div>
        </div>

        <div id="papers-container" class="row"></div>
    </div>

    <script>
        const papersData = {{.Papers}};

        function filterPapers(searchText) {
            if (!searchText) return papersData;

            searchText = searchText.toLowerCase();
            return papersData.filter(function (paper) {
                const titleMatch = paper.title.toLowerCase().includes(searchText);
                const topicsMatch = paper.topics.some(function (topic) {
                    return topic.toLowerCase().includes(searchText);
                });
                const tldrMatch = paper.tldr.toLowerCase().includes(searchText);
                const summaryMatch = paper.summary.toLowerCase().includes(searchText);

                return titleMatch || topicsMatch || tldrMatch || summaryMatch;
            });
        }

        function escapeHtml(text) {
            const div = document.createElement('div');
            div.appendChild(document.createTextNode(text));
            return div.innerHTML;
        }

        function createPaperCard(paper) {
            const showTopics = document.getElementById('showTopics').checked;
            const showTldr = document.getElementById('showTldr').checked;
            const showSummary = document.getElementById('showSummary').checked;

            const topicsHtml = (showTopics && paper.topics.length > 0)
                ? '<div class="mb-3"><div class="d-flex gap-2 flex-wrap">' +
                  paper.topics.map(function (topic) {
                      return '<span class="badge text-bg-info">' + escapeHtml(topic) + '</span>';
                  }).join('') +
                  '</div></div>'
                : '';

            const tldrHtml = (showTldr && paper.tldr)
                ? '<div class="mb-3"><h3 class="h5">TL;DR</h3><p class="card-text">' +
                  escapeHtml(paper.tldr) + '</p></div>'
                : '';

            const summaryHtml = (showSummary && paper.summary)
                ? '<div class="mb-3"><h3 class="h5">Summary</h3><p class="card-text">' +
                  escapeHtml(paper.summary) + '</p></div>'
                : '';

            const urlHtml = paper.pdf_url
                ? '<p class="card-text"><a href="' + encodeURI(paper.pdf_url) +
                  '" class="btn btn-outline-primary btn-sm">Download Paper</a></p>'
                : '';

            return '<div class="col-sm-12 col-lg-6 col-xl-4 mb-4">' +
                   '<div class="card shadow-sm"><div class="card-body">' +
                   '<h3 class="card-title h4">' + escapeHtml(paper.title) + '</h3>' +
                   topicsHtml + tldrHtml + summaryHtml + urlHtml +
                   '</div></div></div>';
        }

        function renderPapers() {
            const searchText = document.getElementById('searchInput').value;
            const filteredPapers = filterPapers(searchText);

            const container = document.getElementById('papers-container');
            container.innerHTML = filteredPapers.map(createPaperCard).join('');

            new Masonry(container, {
                percentPosition: true
            });
        }

        document.getElementById('searchInput').addEventListener('input', renderPapers);
        document.getElementById('showTopics').addEventListener('change', renderPapers);
        document.getElementById('showTldr').addEventListener('change', renderPapers);
        document.getElementById('showSummary').addEventListener('change', renderPapers);

        document.addEventListener('DOMContentLoaded', renderPapers);
    </script>
    <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>
`
