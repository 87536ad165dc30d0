package domain

import (
	"context"

	m "gooze.dev/pkg/scoregate/internal/model"
	"gooze.dev/pkg/scoregate/pkg"
)

// tallyFromRecords counts spilled records. Every record counts toward the total;
// only KILLED counts as killed.
func tallyFromRecords(ctx context.Context, report m.Path, records pkg.FileSpill[m.MutationRecord], maxSurvivors int) (m.Tally, error) {
	tally := m.NewTally(report)

	err := records.Range(ctx, func(_ uint64, record m.MutationRecord) error {
		tally.Record(record, maxSurvivors)
		return nil
	})
	if err != nil {
		return m.Tally{}, err
	}

	return tally, nil
}

// Compare classifies current against the previous baseline. A drop of at most
// tolerance percentage points is reported as unchanged.
func Compare(current m.Score, previous *m.Score, tolerance float64) m.Outcome {
	if previous == nil {
		return m.OutcomeBaselineEstablished
	}

	tolerance = max(tolerance, 0)

	switch {
	case current > *previous:
		return m.OutcomeImproved
	case current == *previous:
		return m.OutcomeUnchanged
	case float64(current) < float64(*previous)-tolerance:
		return m.OutcomeRegressed
	default:
		return m.OutcomeUnchanged
	}
}
