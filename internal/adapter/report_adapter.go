// Package adapter contains filesystem adapters used by the score gate.
package adapter

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	m "gooze.dev/pkg/scoregate/internal/model"
	"gooze.dev/pkg/scoregate/pkg"
)

const (
	collectionElement = "mutations"
	recordElement     = "mutation"

	spillBatchSize = 256
)

// pitMutation mirrors a <mutation> element. Only status is required, so every
// other field is read as text and converted leniently.
type pitMutation struct {
	Status        string `xml:"status,attr"`
	Detected      string `xml:"detected,attr"`
	SourceFile    string `xml:"sourceFile"`
	MutatedClass  string `xml:"mutatedClass"`
	MutatedMethod string `xml:"mutatedMethod"`
	LineNumber    string `xml:"lineNumber"`
	Mutator       string `xml:"mutator"`
	KillingTest   string `xml:"killingTest"`
	Description   string `xml:"description"`
}

// record converts the element. Unparsable detected or lineNumber values are zeroed.
func (p pitMutation) record() m.MutationRecord {
	detected, _ := strconv.ParseBool(strings.TrimSpace(p.Detected))
	line, _ := strconv.Atoi(strings.TrimSpace(p.LineNumber))

	return m.MutationRecord{
		Status:        m.MutationStatus(strings.TrimSpace(p.Status)),
		Detected:      detected,
		SourceFile:    strings.TrimSpace(p.SourceFile),
		MutatedClass:  strings.TrimSpace(p.MutatedClass),
		MutatedMethod: strings.TrimSpace(p.MutatedMethod),
		LineNumber:    line,
		Mutator:       strings.TrimSpace(p.Mutator),
		KillingTest:   strings.TrimSpace(p.KillingTest),
		Description:   strings.TrimSpace(p.Description),
	}
}

// ReportAdapter finds and decodes PIT mutation reports.
type ReportAdapter interface {
	// Locate returns the first candidate that exists as a regular file.
	Locate(candidates []m.Path) (m.Path, error)

	// Load decodes the report at path into a spill of mutation records. The
	// caller owns the returned spill and must Close it.
	Load(ctx context.Context, path m.Path) (pkg.FileSpill[m.MutationRecord], error)
}

// LocalReportAdapter reads reports from the local filesystem.
type LocalReportAdapter struct {
	spillDir string
}

// NewLocalReportAdapter constructs a LocalReportAdapter. Records are spilled to
// spillDir (empty selects the system temp dir).
func NewLocalReportAdapter(spillDir string) *LocalReportAdapter {
	return &LocalReportAdapter{spillDir: spillDir}
}

// Locate checks candidates in order.
func (a *LocalReportAdapter) Locate(candidates []m.Path) (m.Path, error) {
	for _, candidate := range candidates {
		info, err := os.Stat(string(candidate))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Warn("cannot stat report candidate", "path", candidate, "error", err)
			}

			continue
		}

		if info.IsDir() {
			slog.Debug("report candidate is a directory", "path", candidate)
			continue
		}

		slog.Debug("located report", "path", candidate)

		return candidate, nil
	}

	slog.Error("no mutation report found", "candidates", candidates)

	return "", fmt.Errorf("%w: checked %s", m.ErrReportNotFound, joinPaths(candidates))
}

// Load decodes the mutation collection of the report. The collection is either
// the document root or the first <mutations> child of a wrapper root.
func (a *LocalReportAdapter) Load(ctx context.Context, path m.Path) (pkg.FileSpill[m.MutationRecord], error) {
	file, err := os.Open(string(path))
	if err != nil {
		slog.Error("failed to open report", "path", path, "error", err)
		return nil, fmt.Errorf("open report %s: %w", path, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close report", "path", path, "error", err)
		}
	}()

	spill, err := pkg.NewFileSpill[m.MutationRecord](a.spillDir)
	if err != nil {
		return nil, err
	}

	if err := decodeReport(ctx, xml.NewDecoder(file), spill); err != nil {
		_ = spill.Close()

		slog.Error("failed to decode report", "path", path, "error", err)

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		return nil, fmt.Errorf("%w %s: %w", m.ErrParse, path, err)
	}

	slog.Info("decoded report", "path", path, "mutations", spill.Len())

	return spill, nil
}

func decodeReport(ctx context.Context, decoder *xml.Decoder, spill pkg.FileSpill[m.MutationRecord]) error {
	root, err := nextStartElement(decoder)
	if err != nil {
		return err
	}

	if root.Name.Local != collectionElement {
		if err := enterChild(decoder, root, collectionElement); err != nil {
			return err
		}
	}

	if err := decodeCollection(ctx, decoder, spill); err != nil {
		return err
	}

	return drain(decoder)
}

// nextStartElement returns the document root.
func nextStartElement(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, errors.New("document has no root element")
		}

		if err != nil {
			return xml.StartElement{}, err
		}

		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// enterChild advances the decoder into the first direct child of parent named name.
func enterChild(decoder *xml.Decoder, parent xml.StartElement, name string) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return unexpectedEOF(err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local == name {
				return nil
			}

			if err := decoder.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return fmt.Errorf("root <%s> has no <%s> element", parent.Name.Local, name)
		}
	}
}

// decodeCollection spills every direct <mutation> child until the collection closes.
func decodeCollection(ctx context.Context, decoder *xml.Decoder, spill pkg.FileSpill[m.MutationRecord]) error {
	batch := make([]m.MutationRecord, 0, spillBatchSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		token, err := decoder.Token()
		if err != nil {
			return unexpectedEOF(err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local != recordElement {
				if err := decoder.Skip(); err != nil {
					return err
				}

				continue
			}

			var mutation pitMutation
			if err := decoder.DecodeElement(&mutation, &element); err != nil {
				return fmt.Errorf("decode <%s>: %w", recordElement, err)
			}

			batch = append(batch, mutation.record())
			if len(batch) < spillBatchSize {
				continue
			}

			if err := spill.AppendBatch(batch); err != nil {
				return err
			}

			batch = batch[:0]
		case xml.EndElement:
			return spill.AppendBatch(batch)
		}
	}
}

// drain reads the rest of the document so trailing garbage is reported.
func drain(decoder *xml.Decoder) error {
	for {
		_, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

func joinPaths(paths []m.Path) string {
	values := make([]string, 0, len(paths))
	for _, path := range paths {
		values = append(values, string(path))
	}

	return strings.Join(values, ", ")
}
