// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/conference-rank/pkg/types"
)

// Export is the serialized form of a snapshot.
type Export struct {
	Meta    Meta                     `json:"meta" yaml:"meta"`
	Records []types.ConferenceRecord `json:"records" yaml:"records"`
}

func (s *Store) export(ctx context.Context) (Export, error) {
	meta, err := s.Meta(ctx)
	if err != nil {
		return Export{}, err
	}
	records, err := s.Records(ctx)
	if err != nil {
		return Export{}, fmt.Errorf("reading records for export: %w", err)
	}
	return Export{Meta: meta, Records: records}, nil
}

// ExportYAML writes the snapshot as YAML to w.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	exp, err := s.export(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exp); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the snapshot as indented JSON to w.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	exp, err := s.export(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(exp); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
