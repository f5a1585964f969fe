// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubdigest/pkg/types"
)

// IngestSummary holds counts from a metadata ingest run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of metadata files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads paper metadata YAML files from papersDir/metadata/ and
// populates the database. Files whose modification time is unchanged
// since the last run are skipped. Progress is written to w, one line per
// file, followed by a count summary.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	metaDir := filepath.Join(s.papersDir, metadataDir)

	entries, err := os.ReadDir(metaDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading metadata directory %s: %w", metaDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		paperID := strings.TrimSuffix(entry.Name(), ".yaml")
		filePath := filepath.Join(metaDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paperID, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM ingest_status WHERE paper_id = ?`, paperID,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", paperID)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paperID, err)
			summary.Failed++
			continue
		}

		var paper types.Paper
		if err := yaml.Unmarshal(data, &paper); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", paperID, err)
			summary.Failed++
			continue
		}
		if paper.ID == "" {
			paper.ID = paperID
		}

		if err := s.ingestPaper(ctx, paper, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", paperID, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s\n", paperID)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s\n", paperID)
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestPaper(ctx context.Context, paper types.Paper, modTime string) error {
	if err := s.Put(ctx, paper); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ingest_status (paper_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(paper_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		paper.ID, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating ingest status: %w", err)
	}
	return nil
}
