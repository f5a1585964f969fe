// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists paper records in a local SQLite database and
// answers the queries the exporters run.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubdigest/pkg/types"
)

const (
	metadataDir = "metadata"
	indexDir    = "index"
	dbFile      = "papers.db"
)

// filterColumns whitelists the paper columns that GetPapers filters may
// name. Filter values are matched verbatim with equality.
var filterColumns = map[string]bool{
	"id":     true,
	"title":  true,
	"source": true,
}

// Store manages the paper SQLite database.
type Store struct {
	db        *sql.DB
	papersDir string
}

// NewStore opens or creates the paper database at
// papersDir/index/papers.db (or cfg.DBPath when set). It creates the
// schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(cfg.PapersDir, indexDir, dbFile)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, papersDir: cfg.PapersDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors TEXT,
			date TEXT,
			summary TEXT,
			pdf_url TEXT,
			source TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_source ON papers(source)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			paper_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put inserts or replaces a paper record.
func (s *Store) Put(ctx context.Context, paper types.Paper) error {
	if paper.ID == "" {
		return fmt.Errorf("paper has no id")
	}
	if paper.Title == "" {
		return fmt.Errorf("paper %s has no title", paper.ID)
	}

	authorsJSON, _ := json.Marshal(paper.Authors)
	dateStr := ""
	if !paper.Date.IsZero() {
		dateStr = paper.Date.Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO papers (id, title, authors, date, summary, pdf_url, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, authors=excluded.authors, date=excluded.date,
			summary=excluded.summary, pdf_url=excluded.pdf_url, source=excluded.source`,
		paper.ID, paper.Title, string(authorsJSON), dateStr,
		paper.Summary, paper.PDFURL, paper.Source,
	)
	if err != nil {
		return fmt.Errorf("upserting paper %s: %w", paper.ID, err)
	}
	return nil
}

// GetPapers returns the stored papers matching the given filters. Filters
// are passed through without interpretation: each key must name a
// whitelisted column and its value is matched verbatim. A nil or empty
// map returns every paper.
func (s *Store) GetPapers(ctx context.Context, filters map[string]string) ([]types.Paper, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT id, title, authors, date, summary, pdf_url, source
		FROM papers
		WHERE 1=1`)

	// Iterate filter keys in sorted order so the query text is stable.
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !filterColumns[k] {
			return nil, fmt.Errorf("unknown filter %q: use id, title, or source", k)
		}
		fmt.Fprintf(&qb, ` AND %s = ?`, k)
		args = append(args, filters[k])
	}

	qb.WriteString(` ORDER BY id`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var (
			p           types.Paper
			authorsJSON sql.NullString
			dateStr     sql.NullString
			summary     sql.NullString
			pdfURL      sql.NullString
			source      sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &authorsJSON, &dateStr, &summary, &pdfURL, &source); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &p.Authors)
		}
		if dateStr.Valid && dateStr.String != "" {
			if d, err := time.Parse(time.RFC3339, dateStr.String); err == nil {
				p.Date = d
			}
		}
		p.Summary = summary.String
		p.PDFURL = pdfURL.String
		p.Source = source.String
		papers = append(papers, p)
	}

	return papers, rows.Err()
}
