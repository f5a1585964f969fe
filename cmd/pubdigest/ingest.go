// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load paper metadata files into the database",
	Long: `Ingest reads paper metadata YAML files from <papers-dir>/metadata/ and
upserts them into the database. Files unchanged since the previous run
are skipped.`,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d paper(s) failed ingestion", summary.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
