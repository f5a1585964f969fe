// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/pubdigest/pkg/types"
)

// PaperSource supplies the paper records to export. Filters are passed
// through to the source without interpretation.
type PaperSource interface {
	GetPapers(ctx context.Context, filters map[string]string) ([]types.Paper, error)
}

// NoRecordsError reports that the store query matched no papers. No
// output file is written when this is returned.
type NoRecordsError struct {
	Filters map[string]string
}

func (e *NoRecordsError) Error() string {
	if len(e.Filters) == 0 {
		return "no papers found in the store"
	}
	return fmt.Sprintf("no papers found matching filters %v", e.Filters)
}

// UnsupportedFormatError reports an unrecognized export format. It is
// returned before any store query or file I/O happens.
type UnsupportedFormatError struct {
	Format types.ExportFormat
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q: use markdown, obsidian, or html", string(e.Format))
}

// Exporter turns stored papers into a document file.
type Exporter struct {
	Source PaperSource

	// Now supplies the generation timestamp for attribution lines.
	// Nil means time.Now.
	Now func() time.Time
}

// Export queries the source, renders the selected format, and writes the
// document to cfg.OutputPath in a single write, creating intermediate
// directories as needed. On any failure the output path is left
// untouched.
func (e *Exporter) Export(ctx context.Context, cfg types.ExportConfig) error {
	switch cfg.Format {
	case types.FormatMarkdown, types.FormatObsidian, types.FormatHTML:
	default:
		return &UnsupportedFormatError{Format: cfg.Format}
	}

	papers, err := e.Source.GetPapers(ctx, cfg.Filters)
	if err != nil {
		return fmt.Errorf("querying papers: %w", err)
	}
	if len(papers) == 0 {
		return &NoRecordsError{Filters: cfg.Filters}
	}

	title := cfg.Title
	if title == "" {
		title = types.DefaultExportTitle
	}

	now := e.Now
	if now == nil {
		now = time.Now
	}

	var doc string
	switch cfg.Format {
	case types.FormatMarkdown:
		doc = RenderMarkdown(papers, title, now())
	case types.FormatObsidian:
		doc = RenderObsidian(papers, title)
	case types.FormatHTML:
		doc, err = RenderHTML(papers, title)
		if err != nil {
			return err
		}
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.OutputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	return nil
}
