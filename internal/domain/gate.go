package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"gooze.dev/pkg/scoregate/internal/adapter"
	"gooze.dev/pkg/scoregate/internal/controller"
	m "gooze.dev/pkg/scoregate/internal/model"
)

// CheckArgs contains the arguments for a gate run.
type CheckArgs struct {
	Reports             []m.Path
	Baseline            m.Path
	Tolerance           float64
	PersistOnRegression bool
	DryRun              bool
	MaxSurvivors        int
}

// ScoreArgs contains the arguments for scoring reports without a baseline.
type ScoreArgs struct {
	// Reports are scored as given; when empty the first existing Candidate is used.
	Reports      []m.Path
	Candidates   []m.Path
	Threads      int
	MaxSurvivors int
}

// BaselineArgs identifies the baseline file.
type BaselineArgs struct {
	Baseline m.Path
}

// SetBaselineArgs contains the arguments for overwriting the baseline.
type SetBaselineArgs struct {
	Baseline m.Path
	Score    m.Score
}

// Gate defines the mutation score gate workflow.
type Gate interface {
	Check(ctx context.Context, args CheckArgs) (m.GateResult, error)
	Score(ctx context.Context, args ScoreArgs) (m.Tally, error)
	ShowBaseline(ctx context.Context, args BaselineArgs) error
	SetBaseline(ctx context.Context, args SetBaselineArgs) error
}

type gate struct {
	reports   adapter.ReportAdapter
	baselines adapter.BaselineStore
	ui        controller.UI
}

// NewGate creates a new Gate instance with the provided dependencies.
func NewGate(reports adapter.ReportAdapter, baselines adapter.BaselineStore, ui controller.UI) Gate {
	return &gate{
		reports:   reports,
		baselines: baselines,
		ui:        ui,
	}
}

// Check scores the first existing report, compares it against the baseline and
// records the new score. A regression is returned as an error wrapping
// m.ErrRegression after the baseline has been handled.
func (g *gate) Check(ctx context.Context, args CheckArgs) (m.GateResult, error) {
	if err := g.ui.Start(ctx); err != nil {
		return m.GateResult{}, err
	}
	defer g.closeUI(ctx)

	reportPath, err := g.reports.Locate(args.Reports)
	if err != nil {
		return m.GateResult{}, err
	}

	tally, err := g.scoreReport(ctx, reportPath, args.MaxSurvivors)
	if err != nil {
		return m.GateResult{}, err
	}

	previous, found, err := g.baselines.Load(args.Baseline)
	if err != nil {
		return m.GateResult{}, err
	}

	result := m.GateResult{
		Report:   reportPath,
		Baseline: args.Baseline,
		Tally:    tally,
		Current:  tally.Score(),
		DryRun:   args.DryRun,
	}

	if found {
		result.Previous = &previous
	}

	result.Outcome = Compare(result.Current, result.Previous, args.Tolerance)
	result.Passed = result.Outcome.Passed()

	slog.Info("compared mutation score",
		"report", reportPath,
		"current", result.Current.String(),
		"baseline_found", found,
		"previous", previous.String(),
		"outcome", result.Outcome)

	switch {
	case args.DryRun:
		result.BaselineDiff, err = baselineDiff(args.Baseline, result.Previous, result.Current)
		if err != nil {
			return result, err
		}
	case result.Passed || args.PersistOnRegression:
		if err := g.baselines.Save(args.Baseline, result.Current); err != nil {
			return result, err
		}

		result.Persisted = true
	default:
		slog.Info("keeping baseline after regression", "baseline", args.Baseline)
	}

	if err := g.ui.DisplayResult(ctx, result); err != nil {
		return result, err
	}

	if !result.Passed {
		return result, fmt.Errorf("%w from %s to %s", m.ErrRegression, previous.Percent(), result.Current.Percent())
	}

	return result, nil
}

// Score scores reports in parallel and displays each tally plus the aggregate.
func (g *gate) Score(ctx context.Context, args ScoreArgs) (m.Tally, error) {
	if err := g.ui.Start(ctx); err != nil {
		return m.Tally{}, err
	}
	defer g.closeUI(ctx)

	reports := args.Reports
	if len(reports) == 0 {
		reportPath, err := g.reports.Locate(args.Candidates)
		if err != nil {
			return m.Tally{}, err
		}

		reports = []m.Path{reportPath}
	}

	tallies := make([]m.Tally, len(reports))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, report := range reports {
		group.Go(func() error {
			tally, err := g.scoreReport(groupCtx, report, args.MaxSurvivors)
			if err != nil {
				return err
			}

			tallies[i] = tally

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.Tally{}, err
	}

	aggregate := m.NewTally("")
	for _, tally := range tallies {
		aggregate.Add(tally, args.MaxSurvivors)
	}

	slog.Info("scored reports", "reports", len(reports), "score", aggregate.Score().String())

	if err := g.ui.DisplayAggregate(ctx, tallies, aggregate); err != nil {
		return aggregate, err
	}

	return aggregate, nil
}

// ShowBaseline displays the stored baseline.
func (g *gate) ShowBaseline(ctx context.Context, args BaselineArgs) error {
	if err := g.ui.Start(ctx); err != nil {
		return err
	}
	defer g.closeUI(ctx)

	score, found, err := g.baselines.Load(args.Baseline)
	if err != nil {
		return err
	}

	return g.ui.DisplayBaseline(ctx, args.Baseline, score, found)
}

// SetBaseline overwrites the baseline with a score in [0, 100].
func (g *gate) SetBaseline(ctx context.Context, args SetBaselineArgs) error {
	if !args.Score.Valid() {
		return fmt.Errorf("%w: %s is outside [0, 100]", m.ErrInvalidBaseline, args.Score.String())
	}

	if err := g.ui.Start(ctx); err != nil {
		return err
	}
	defer g.closeUI(ctx)

	score := m.RoundScore(float64(args.Score))
	if err := g.baselines.Save(args.Baseline, score); err != nil {
		return err
	}

	slog.Info("baseline set manually", "baseline", args.Baseline, "score", score.String())

	return g.ui.DisplayBaseline(ctx, args.Baseline, score, true)
}

func (g *gate) scoreReport(ctx context.Context, path m.Path, maxSurvivors int) (m.Tally, error) {
	records, err := g.reports.Load(ctx, path)
	if err != nil {
		return m.Tally{}, err
	}

	defer func() {
		if err := records.Close(); err != nil {
			slog.Warn("failed to release report records", "report", path, "error", err)
		}
	}()

	tally, err := tallyFromRecords(ctx, path, records, maxSurvivors)
	if err != nil {
		return m.Tally{}, fmt.Errorf("score report %s: %w", path, err)
	}

	slog.Debug("scored report", "report", path, "total", tally.Total, "killed", tally.Killed)

	return tally, nil
}

func (g *gate) closeUI(ctx context.Context) {
	if err := g.ui.Close(ctx); err != nil {
		slog.Warn("failed to close UI", "error", err)
	}
}

// baselineDiff renders the change a gate run would make to the baseline file.
func baselineDiff(path m.Path, previous *m.Score, current m.Score) (string, error) {
	var before []string
	if previous != nil {
		before = difflib.SplitLines(previous.String())
	}

	diff := difflib.UnifiedDiff{
		A:        before,
		B:        difflib.SplitLines(current.String()),
		FromFile: string(path),
		ToFile:   string(path),
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff baseline: %w", err)
	}

	return text, nil
}
