// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubdigest CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubdigest CLI.
var rootCmd = &cobra.Command{
	Use:   "pubdigest",
	Short: "Export summarized research papers as readable documents",
	Long: `pubdigest maintains a local database of research-paper records with
free-text summary annotations and exports them as readable documents:
plain Markdown, Obsidian-flavored Markdown, or a standalone searchable
HTML page.

Use ingest to load paper metadata files into the database, list to
inspect what is stored, and export to produce a document.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubdigest.yaml or ~/.config/pubdigest/config.yaml)")
	rootCmd.PersistentFlags().String("papers-dir", "papers", "base directory for papers (contains metadata/, index/)")
	rootCmd.PersistentFlags().String("db", "", "database path (default: <papers-dir>/index/papers.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubdigest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubdigest"))
		}
	}

	viper.SetEnvPrefix("PUBDIGEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
