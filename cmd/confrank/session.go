// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/conference-rank/internal/ordering"
	"github.com/pdiddy/conference-rank/internal/render"
	"github.com/pdiddy/conference-rank/internal/source"
	"github.com/pdiddy/conference-rank/internal/view"
	"github.com/pdiddy/conference-rank/pkg/types"
)

// loadRecords performs the session's single load from cfg.Source.
func loadRecords(ctx context.Context) ([]types.ConferenceRecord, error) {
	loader := source.NewLoader(cfg.HTTP)
	loader.Logger = logger
	return loader.Load(ctx, cfg.Source)
}

// openSession loads the snapshot and builds a controller starting at state.
func openSession(ctx context.Context, state types.ViewState) (*view.Controller, error) {
	records, err := loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return view.New(records, cfg.PageSize, view.WithState(state), view.WithLogger(logger)), nil
}

func newRenderer() (*render.Renderer, error) {
	return render.New(cfg.Locale)
}

// formatFlag reads and validates the --format flag.
func formatFlag(cmd *cobra.Command) (render.Format, error) {
	f, _ := cmd.Flags().GetString("format")
	return render.ParseFormat(f)
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "text", "output format: text, json, or yaml")
}

// stateFromFlags builds the initial view state from the table flags.
func stateFromFlags(cmd *cobra.Command) (types.ViewState, error) {
	state := types.DefaultViewState()

	flags := cmd.Flags()
	state.Criteria.SearchTerm, _ = flags.GetString("search")
	state.Criteria.Year, _ = flags.GetString("year")
	state.Criteria.Category, _ = flags.GetString("category")
	state.Criteria.Classification, _ = flags.GetString("class")
	state.Page, _ = flags.GetInt("page")

	if name, _ := flags.GetString("sort"); name != "" {
		key, ok := ordering.ParseKey(name)
		if !ok {
			return state, fmt.Errorf("unknown sort key %q: use one of %v", name, ordering.Keys())
		}
		state.SortKey = key
	}
	if order, _ := flags.GetString("order"); order != "" {
		dir, ok := ordering.ParseDirection(order)
		if !ok {
			return state, fmt.Errorf("unknown order %q: use asc or desc", order)
		}
		state.Direction = dir
	}
	return state, nil
}
