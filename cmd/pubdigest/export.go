// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubdigest/internal/export"
	"github.com/pdiddy/pubdigest/internal/store"
	"github.com/pdiddy/pubdigest/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored papers as Markdown, Obsidian Markdown, or HTML",
	Long: `Export queries the paper database, renders the selected format, and
writes a single document file. Papers are ordered by title. Optional
--filter flags restrict the query; they are passed to the store verbatim.

The html format produces a standalone page with client-side search and
per-section visibility toggles.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	title, _ := cmd.Flags().GetString("title")
	filterArgs, _ := cmd.Flags().GetStringArray("filter")

	if title == "" {
		title = viper.GetString("export.title")
	}

	filters, err := parseFilters(filterArgs)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	e := &export.Exporter{Source: s}
	cfg := types.ExportConfig{
		OutputPath: output,
		Format:     types.ExportFormat(format),
		Title:      title,
		Filters:    filters,
	}
	if err := e.Export(context.Background(), cfg); err != nil {
		return err
	}

	fmt.Printf("Exported papers to %s\n", output)
	return nil
}

// parseFilters converts repeated key=value flags into a filter map.
func parseFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

// openStore builds a Store from the persistent flags, falling back to
// config file values for unset flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	papersDir, _ := cmd.Flags().GetString("papers-dir")
	if !cmd.Flags().Changed("papers-dir") {
		if v := viper.GetString("papers_dir"); v != "" {
			papersDir = v
		}
	}
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("db_path")
	}

	return store.NewStore(types.StoreConfig{PapersDir: papersDir, DBPath: dbPath})
}

func init() {
	exportCmd.Flags().String("output", "digest.md", "output file path")
	exportCmd.Flags().String("format", "markdown", "output format: markdown, obsidian, or html")
	exportCmd.Flags().String("title", "", "document title (default: Research Paper Summaries)")
	exportCmd.Flags().StringArray("filter", nil, "filter papers by column, as key=value (repeatable)")

	rootCmd.AddCommand(exportCmd)
}
