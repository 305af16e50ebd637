// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/conference-rank/internal/render"
	"github.com/pdiddy/conference-rank/pkg/types"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print one page of conferences matching the given filters",
	Long: `Table loads the snapshot, applies the search and filters, sorts the
matching records, and prints the requested page.

Search matches the conference name or acronym, ignoring case. Use
--class none to select conferences without a classification.`,
	RunE: runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	state, err := stateFromFlags(cmd)
	if err != nil {
		return err
	}

	ctl, err := openSession(cmd.Context(), state)
	if err != nil {
		return err
	}

	if format != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), format, ctl.Window())
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	r.Table(cmd.OutOrStdout(), ctl.Window())
	return nil
}

var showCmd = &cobra.Command{
	Use:   "show ACRONYM",
	Short: "Print every field of one conference and its outbound links",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	ctl, err := openSession(cmd.Context(), types.DefaultViewState())
	if err != nil {
		return err
	}

	rec, ok := ctl.Lookup(args[0])
	if !ok {
		return fmt.Errorf("no conference with acronym %q", args[0])
	}
	if format != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), format, struct {
			Record types.ConferenceRecord `json:"record" yaml:"record"`
			Links  []render.Link          `json:"links" yaml:"links"`
		}{rec, render.Links(rec)})
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	r.Detail(cmd.OutOrStdout(), rec)
	return nil
}

func init() {
	f := tableCmd.Flags()
	f.String("search", "", "match name or acronym (case-insensitive substring)")
	f.String("year", "", "exact year")
	f.String("category", "", "exact category")
	f.String("class", "", "classification (Top10, Top20, General, or none)")
	f.String("sort", "", "sort column (name, acronym, year, h5index, citationCount, paperCount, category, h5source, classification, linkCount)")
	f.String("order", "", "sort order: asc or desc")
	f.Int("page", 1, "page number")
	addFormatFlag(tableCmd)
	addFormatFlag(showCmd)

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(showCmd)
}
