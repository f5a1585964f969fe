// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubdigest/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored papers",
	Long: `List prints the stored papers as a table: id, title, source, and
whether a summary annotation is present. Supports the same --filter
flags as export.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	filterArgs, _ := cmd.Flags().GetStringArray("filter")
	filters, err := parseFilters(filterArgs)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	papers, err := s.GetPapers(context.Background(), filters)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatListOutput(papers, jsonOutput)
}

func formatListOutput(papers []types.Paper, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	if len(papers) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-50s  %-10s  %s\n", "ID", "Title", "Source", "Summary")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))

	for _, p := range papers {
		id := p.ID
		if len(id) > 20 {
			id = id[:17] + "..."
		}
		title := p.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		hasSummary := "no"
		if p.Summary != "" {
			hasSummary = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-50s  %-10s  %s\n", id, title, p.Source, hasSummary)
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(papers))
	return nil
}

func init() {
	listCmd.Flags().StringArray("filter", nil, "filter papers by column, as key=value (repeatable)")
	listCmd.Flags().Bool("json", false, "output papers as JSON")

	rootCmd.AddCommand(listCmd)
}
