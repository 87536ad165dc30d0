package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/scoregate/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd   *cobra.Command
	theme theme
}

// NewSimpleUI creates a new SimpleUI that prints plain text.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, theme: plainTheme{}}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) error {
	return nil
}

// displayTally prints the status breakdown and score of one report.
func (s *SimpleUI) displayTally(ctx context.Context, tally m.Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if tally.Report != "" {
		s.printf("Report: %s\n", tally.Report)
	}

	if tally.Total > 0 {
		s.printf("\n%s", renderStatusTable(tally))
	} else {
		s.printf("%s\n", s.theme.muted("No mutations found in report."))
	}

	if len(tally.Survivors) > 0 {
		s.printf("\nUndetected mutations (first %d):\n%s", len(tally.Survivors), renderSurvivorTable(tally.Survivors))
	}

	score := tally.Score()
	s.printf("\nMutation score: %s (%d/%d killed)\n", s.theme.score(score), tally.Killed, tally.Total)

	if bar := s.theme.bar(score); bar != "" {
		s.printf("%s\n", bar)
	}

	return nil
}

// DisplayAggregate prints the combined score of several reports.
func (s *SimpleUI) DisplayAggregate(ctx context.Context, tallies []m.Tally, aggregate m.Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, tally := range tallies {
		if i > 0 {
			s.printf("\n")
		}

		if err := s.displayTally(ctx, tally); err != nil {
			return err
		}
	}

	if len(tallies) > 1 {
		s.printf("\nAggregate mutation score across %d reports: %s (%d/%d killed)\n",
			len(tallies), s.theme.score(aggregate.Score()), aggregate.Killed, aggregate.Total)
	}

	return nil
}

// DisplayResult prints the gate verdict.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.GateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.displayTally(ctx, result.Tally); err != nil {
		return err
	}

	s.printf("\n")

	current := result.Current.Percent()

	switch result.Outcome {
	case m.OutcomeBaselineEstablished:
		s.printf("%s\n", s.theme.good(fmt.Sprintf(
			"No previous baseline found at %s; recording %s as the baseline.", result.Baseline, current)))
	case m.OutcomeImproved:
		s.printf("%s\n", s.theme.good(fmt.Sprintf(
			"Mutation score improved: %s -> %s", previousPercent(result), current)))
	case m.OutcomeUnchanged:
		s.printf("%s\n", s.theme.good(fmt.Sprintf(
			"Mutation score unchanged: %s (baseline %s)", current, previousPercent(result))))
	case m.OutcomeRegressed:
		s.printf("%s\n", s.theme.bad(fmt.Sprintf(
			"Mutation score regressed: %s -> %s", previousPercent(result), current)))
	}

	switch {
	case result.DryRun:
		s.printf("%s\n", s.theme.muted("Dry run: baseline not written."))

		if result.BaselineDiff != "" {
			s.printf("%s", result.BaselineDiff)
		}
	case result.Persisted:
		s.printf("Baseline %s updated to %s\n", result.Baseline, result.Current.String())
	default:
		s.printf("%s\n", s.theme.muted(fmt.Sprintf("Baseline %s left unchanged.", result.Baseline)))
	}

	return nil
}

// DisplayBaseline prints the stored baseline.
func (s *SimpleUI) DisplayBaseline(ctx context.Context, path m.Path, score m.Score, found bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !found {
		s.printf("No baseline recorded at %s\n", path)
		return nil
	}

	s.printf("Baseline mutation score: %s (%s)\n", s.theme.score(score), path)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func previousPercent(result m.GateResult) string {
	if result.Previous == nil {
		return "n/a"
	}

	return result.Previous.Percent()
}

func renderStatusTable(tally m.Tally) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, status := range tally.Statuses() {
		table.Append([]string{string(status), strconv.Itoa(tally.ByStatus[status])})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(tally.Total)})
	table.Render()

	return tableBuffer.String()
}

func renderSurvivorTable(survivors []m.MutationRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Line", "Method", "Mutator", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, survivor := range survivors {
		table.Append([]string{
			survivorFile(survivor),
			strconv.Itoa(survivor.LineNumber),
			survivor.MutatedMethod,
			shortMutator(survivor.Mutator),
			string(survivor.Status),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func survivorFile(record m.MutationRecord) string {
	if record.SourceFile != "" {
		return record.SourceFile
	}

	return record.MutatedClass
}

// shortMutator strips the package of fully qualified PIT mutator names.
func shortMutator(mutator string) string {
	return mutator[strings.LastIndex(mutator, ".")+1:]
}
