package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	m "gooze.dev/pkg/scoregate/internal/model"
	"gopkg.in/yaml.v3"
)

type encoder interface {
	Encode(v any) error
}

// scoreDocument is written by the score command.
type scoreDocument struct {
	Reports   []m.Tally `json:"reports" yaml:"reports"`
	Aggregate m.Tally   `json:"aggregate" yaml:"aggregate"`
	Score     m.Score   `json:"score" yaml:"score"`
}

// baselineDocument is written by the baseline command.
type baselineDocument struct {
	Path  m.Path   `json:"path" yaml:"path"`
	Found bool     `json:"found" yaml:"found"`
	Score *m.Score `json:"score,omitempty" yaml:"score,omitempty"`
}

// StructuredUI writes one machine readable document per command.
type StructuredUI struct {
	format  Format
	encoder encoder
	closer  func() error
}

// NewStructuredUI creates a UI that encodes results as json or yaml.
func NewStructuredUI(out io.Writer, format Format) *StructuredUI {
	ui := &StructuredUI{format: format}

	if format == FormatYAML {
		yamlEncoder := yaml.NewEncoder(out)
		yamlEncoder.SetIndent(2)
		ui.encoder = yamlEncoder
		ui.closer = yamlEncoder.Close
	} else {
		jsonEncoder := json.NewEncoder(out)
		jsonEncoder.SetIndent("", "  ")
		ui.encoder = jsonEncoder
		ui.closer = func() error { return nil }
	}

	return ui
}

// Start initializes the UI.
func (s *StructuredUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close flushes the encoder.
func (s *StructuredUI) Close(_ context.Context) error {
	return s.closer()
}

// DisplayAggregate writes the score document.
func (s *StructuredUI) DisplayAggregate(ctx context.Context, tallies []m.Tally, aggregate m.Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.encode(scoreDocument{
		Reports:   tallies,
		Aggregate: aggregate,
		Score:     aggregate.Score(),
	})
}

// DisplayResult writes the gate result document.
func (s *StructuredUI) DisplayResult(ctx context.Context, result m.GateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.encode(result)
}

// DisplayBaseline writes the baseline document.
func (s *StructuredUI) DisplayBaseline(ctx context.Context, path m.Path, score m.Score, found bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := baselineDocument{Path: path, Found: found}
	if found {
		doc.Score = &score
	}

	return s.encode(doc)
}

func (s *StructuredUI) encode(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		return fmt.Errorf("encode %s output: %w", s.format, err)
	}

	return nil
}
