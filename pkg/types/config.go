// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StoreConfig holds settings for the paper store.
type StoreConfig struct {
	// PapersDir is the base directory for papers (contains metadata/, index/).
	PapersDir string `json:"papers_dir" yaml:"papers_dir"`

	// DBPath overrides the database location. Empty means
	// PapersDir/index/papers.db.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ExportConfig holds settings for one export run.
type ExportConfig struct {
	// OutputPath is the file the exported document is written to.
	// Intermediate directories are created as needed.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the output format: markdown, obsidian, or html.
	Format ExportFormat `json:"format" yaml:"format"`

	// Title is the document title. Empty means DefaultExportTitle.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Filters are passed verbatim to the store query.
	Filters map[string]string `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// DefaultExportTitle is used when ExportConfig.Title is empty.
const DefaultExportTitle = "Research Paper Summaries"
