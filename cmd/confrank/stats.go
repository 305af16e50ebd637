// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/conference-rank/internal/render"
	"github.com/pdiddy/conference-rank/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the h5-index distribution of the whole snapshot",
	Long: `Stats prints the record count, paper and citation totals, the mean and
median h5-index over conferences with a positive h5-index, the h5-index
histogram, and a per-category breakdown. Filters never apply here.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	ctl, err := openSession(cmd.Context(), types.DefaultViewState())
	if err != nil {
		return err
	}

	if format != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), format, ctl.Summary())
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	r.Summary(cmd.OutOrStdout(), ctl.Summary())
	return nil
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the years, categories, and classifications available as filters",
	RunE:  runOptions,
}

func runOptions(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	ctl, err := openSession(cmd.Context(), types.DefaultViewState())
	if err != nil {
		return err
	}

	opts := ctl.Options()
	if format != render.FormatText {
		return render.Encode(cmd.OutOrStdout(), format, opts)
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	r.Options(cmd.OutOrStdout(), opts.Years, opts.Categories, opts.Classifications)
	return nil
}

func init() {
	addFormatFlag(statsCmd)
	addFormatFlag(optionsCmd)

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(optionsCmd)
}
