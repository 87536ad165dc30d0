// Package controller provides output adapters for displaying gate results.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/scoregate/internal/model"
)

// UI defines how gate progress and verdicts are reported.
// Implementations can use different output methods (plain text, styled text, json, yaml).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context) error
	DisplayAggregate(ctx context.Context, tallies []m.Tally, aggregate m.Tally) error
	DisplayResult(ctx context.Context, result m.GateResult) error
	DisplayBaseline(ctx context.Context, path m.Path, score m.Score, found bool) error
}

// Format selects the output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", value)
	}
}

// NewUI returns the UI for format. Text output is styled when tty is true.
func NewUI(cmd *cobra.Command, format Format, tty bool) (UI, error) {
	switch format {
	case FormatText, "":
		if tty {
			return NewStyledUI(cmd), nil
		}

		return NewSimpleUI(cmd), nil
	case FormatJSON, FormatYAML:
		return NewStructuredUI(cmd.OutOrStdout(), format), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
