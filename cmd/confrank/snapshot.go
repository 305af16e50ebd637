// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/conference-rank/internal/render"
	"github.com/pdiddy/conference-rank/internal/snapshot"
	"github.com/pdiddy/conference-rank/internal/source"
)

const defaultSnapshotDB = "out/snapshot.db"

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Import the ranking CSV into SQLite or export a stored snapshot",
	Long: `Snapshot manages an offline SQLite copy of the ranking data. Import
replaces the stored snapshot with the configured source; export writes the
stored snapshot as YAML or JSON. Point --source at the .db file to browse it.`,
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the stored snapshot with the configured source",
	RunE:  runSnapshotImport,
}

func runSnapshotImport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if source.Classify(cfg.Source) == source.KindSnapshot {
		return fmt.Errorf("source %s is already a snapshot", cfg.Source)
	}

	records, err := loadRecords(cmd.Context())
	if err != nil {
		return err
	}

	store, err := snapshot.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	meta, err := store.Import(cmd.Context(), records, cfg.Source)
	if err != nil {
		return err
	}
	logger.Info("snapshot imported", "db", store.Path(), "source", meta.Source, "records", meta.Records)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d conferences into %s\n", meta.Records, store.Path())
	return nil
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored snapshot as YAML or JSON",
	RunE:  runSnapshotExport,
}

func runSnapshotExport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	outPath, _ := cmd.Flags().GetString("out")
	f, _ := cmd.Flags().GetString("format")
	format, err := render.ParseFormat(f)
	if err != nil {
		return err
	}

	store, err := snapshot.OpenReadOnly(cmd.Context(), dbPath)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer store.Close()

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer out.Close()
		w = out
	}

	switch format {
	case render.FormatJSON:
		err = store.ExportJSON(cmd.Context(), w)
	case render.FormatYAML:
		err = store.ExportYAML(cmd.Context(), w)
	default:
		return fmt.Errorf("export needs --format yaml or json")
	}
	if err != nil {
		return err
	}
	if outPath != "" {
		logger.Info("snapshot exported", "db", dbPath, "out", outPath, "format", format)
	}
	return nil
}

func init() {
	snapshotImportCmd.Flags().String("db", defaultSnapshotDB, "SQLite snapshot path")
	snapshotExportCmd.Flags().String("db", defaultSnapshotDB, "SQLite snapshot path")
	snapshotExportCmd.Flags().String("out", "", "output file (default: stdout)")
	snapshotExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	rootCmd.AddCommand(snapshotCmd)
}
