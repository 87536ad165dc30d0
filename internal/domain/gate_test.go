package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "gooze.dev/pkg/scoregate/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/scoregate/internal/controller/mocks"
	"gooze.dev/pkg/scoregate/internal/domain"
	m "gooze.dev/pkg/scoregate/internal/model"
	"gooze.dev/pkg/scoregate/pkg"
)

const (
	baselinePath = m.Path(".github/mutation_score.txt")
	primaryPath  = m.Path("core/target/pit-reports/mutations.xml")
	fallbackPath = m.Path("target/pit-reports/mutations.xml")
)

var candidates = []m.Path{primaryPath, fallbackPath}

type gateMocks struct {
	reports   *adaptermocks.MockReportAdapter
	baselines *adaptermocks.MockBaselineStore
	ui        *controllermocks.MockUI
}

func newGateMocks(t *testing.T) (gateMocks, domain.Gate) {
	t.Helper()

	mocks := gateMocks{
		reports:   adaptermocks.NewMockReportAdapter(t),
		baselines: adaptermocks.NewMockBaselineStore(t),
		ui:        controllermocks.NewMockUI(t),
	}

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return(nil).Once()

	return mocks, domain.NewGate(mocks.reports, mocks.baselines, mocks.ui)
}

func records(t *testing.T, killed, other int) pkg.FileSpill[m.MutationRecord] {
	t.Helper()

	spill, err := pkg.NewFileSpill[m.MutationRecord](t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Close() })

	for i := 0; i < killed; i++ {
		require.NoError(t, spill.Append(m.MutationRecord{Status: m.StatusKilled}))
	}

	for i := 0; i < other; i++ {
		require.NoError(t, spill.Append(m.MutationRecord{Status: m.StatusSurvived, LineNumber: i + 1}))
	}

	return spill
}

func checkArgs() domain.CheckArgs {
	return domain.CheckArgs{
		Reports:      candidates,
		Baseline:     baselinePath,
		MaxSurvivors: 10,
	}
}

func TestGate_Check_EstablishesBaseline(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(fallbackPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, fallbackPath).Return(records(t, 7, 3), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(0), false, nil).Once()
	mocks.baselines.EXPECT().Save(baselinePath, m.Score(70)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.MatchedBy(func(result m.GateResult) bool {
		return result.Outcome == m.OutcomeBaselineEstablished && result.Persisted && result.Previous == nil
	})).Return(nil).Once()

	result, err := gate.Check(context.Background(), checkArgs())
	require.NoError(t, err)

	assert.Equal(t, fallbackPath, result.Report)
	assert.Equal(t, m.Score(70), result.Current)
	assert.Equal(t, 10, result.Tally.Total)
	assert.Len(t, result.Tally.Survivors, 3)
	assert.True(t, result.Passed)
}

func TestGate_Check_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		killed   int
		other    int
		previous m.Score
		want     m.Outcome
	}{
		{"improved", 8, 2, 70, m.OutcomeImproved},
		{"unchanged", 7, 3, 70, m.OutcomeUnchanged},
		{"zero mutations against zero baseline", 0, 0, 0, m.OutcomeUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, gate := newGateMocks(t)
			current := m.NewScore(tt.killed, tt.killed+tt.other)

			mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
			mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, tt.killed, tt.other), nil).Once()
			mocks.baselines.EXPECT().Load(baselinePath).Return(tt.previous, true, nil).Once()
			mocks.baselines.EXPECT().Save(baselinePath, current).Return(nil).Once()
			mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.Anything).Return(nil).Once()

			result, err := gate.Check(context.Background(), checkArgs())
			require.NoError(t, err)

			assert.Equal(t, tt.want, result.Outcome)
			require.NotNil(t, result.Previous)
			assert.Equal(t, tt.previous, *result.Previous)
			assert.True(t, result.Persisted)
		})
	}
}

func TestGate_Check_RegressionPersistsWhenConfigured(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 13, 7), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(70), true, nil).Once()
	mocks.baselines.EXPECT().Save(baselinePath, m.Score(65)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.MatchedBy(func(result m.GateResult) bool {
		return result.Outcome == m.OutcomeRegressed && !result.Passed && result.Persisted
	})).Return(nil).Once()

	args := checkArgs()
	args.PersistOnRegression = true

	result, err := gate.Check(context.Background(), args)
	require.ErrorIs(t, err, m.ErrRegression)
	assert.Contains(t, err.Error(), "70.0%")
	assert.Contains(t, err.Error(), "65.0%")
	assert.Equal(t, m.OutcomeRegressed, result.Outcome)
}

func TestGate_Check_RegressionKeepsBaselineByDefault(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 13, 7), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(70), true, nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.MatchedBy(func(result m.GateResult) bool {
		return !result.Persisted
	})).Return(nil).Once()

	_, err := gate.Check(context.Background(), checkArgs())
	require.ErrorIs(t, err, m.ErrRegression)
	mocks.baselines.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGate_Check_ToleranceAbsorbsSmallDrop(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 69, 31), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(70), true, nil).Once()
	mocks.baselines.EXPECT().Save(baselinePath, m.Score(69)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.Anything).Return(nil).Once()

	args := checkArgs()
	args.Tolerance = 1

	result, err := gate.Check(context.Background(), args)
	require.NoError(t, err)
	assert.Equal(t, m.OutcomeUnchanged, result.Outcome)
}

func TestGate_Check_DryRunNeverSaves(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 1, 1), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(40), true, nil).Once()
	mocks.ui.EXPECT().DisplayResult(mock.Anything, mock.Anything).Return(nil).Once()

	args := checkArgs()
	args.DryRun = true

	result, err := gate.Check(context.Background(), args)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.False(t, result.Persisted)
	assert.Contains(t, result.BaselineDiff, "-40.0")
	assert.Contains(t, result.BaselineDiff, "+50.0")
	mocks.baselines.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGate_Check_ReportNotFound(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(m.Path(""), m.ErrReportNotFound).Once()

	_, err := gate.Check(context.Background(), checkArgs())
	require.ErrorIs(t, err, m.ErrReportNotFound)

	mocks.baselines.AssertNotCalled(t, "Load", mock.Anything)
	mocks.baselines.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGate_Check_ParseError(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(nil, m.ErrParse).Once()

	_, err := gate.Check(context.Background(), checkArgs())
	require.ErrorIs(t, err, m.ErrParse)

	mocks.baselines.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGate_Check_InvalidBaseline(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 1, 0), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(0), false, m.ErrInvalidBaseline).Once()

	_, err := gate.Check(context.Background(), checkArgs())
	require.ErrorIs(t, err, m.ErrInvalidBaseline)

	mocks.baselines.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGate_Check_SaveError(t *testing.T) {
	mocks, gate := newGateMocks(t)
	wantErr := errors.New("read-only file system")

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 1, 0), nil).Once()
	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(0), false, nil).Once()
	mocks.baselines.EXPECT().Save(baselinePath, m.Score(100)).Return(wantErr).Once()

	_, err := gate.Check(context.Background(), checkArgs())
	require.ErrorIs(t, err, wantErr)

	mocks.ui.AssertNotCalled(t, "DisplayResult", mock.Anything, mock.Anything)
}

func TestGate_Check_StartError(t *testing.T) {
	reports := adaptermocks.NewMockReportAdapter(t)
	baselines := adaptermocks.NewMockBaselineStore(t)
	ui := controllermocks.NewMockUI(t)
	wantErr := errors.New("ui failed")

	ui.EXPECT().Start(mock.Anything).Return(wantErr).Once()

	_, err := domain.NewGate(reports, baselines, ui).Check(context.Background(), checkArgs())
	require.ErrorIs(t, err, wantErr)
}

func TestGate_Score_AggregatesReports(t *testing.T) {
	mocks, gate := newGateMocks(t)

	reports := []m.Path{"a/mutations.xml", "b/mutations.xml", "c/mutations.xml"}

	mocks.reports.EXPECT().Load(mock.Anything, reports[0]).Return(records(t, 3, 1), nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, reports[1]).Return(records(t, 1, 1), nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, reports[2]).Return(records(t, 0, 0), nil).Once()
	mocks.ui.EXPECT().DisplayAggregate(mock.Anything, mock.MatchedBy(func(tallies []m.Tally) bool {
		return len(tallies) == 3 &&
			tallies[0].Report == reports[0] &&
			tallies[1].Report == reports[1] &&
			tallies[2].Report == reports[2]
	}), mock.Anything).Return(nil).Once()

	aggregate, err := gate.Score(context.Background(), domain.ScoreArgs{Reports: reports, Threads: 2})
	require.NoError(t, err)

	assert.Equal(t, 6, aggregate.Total)
	assert.Equal(t, 4, aggregate.Killed)
	assert.Equal(t, m.Score(66.67), aggregate.Score())
}

func TestGate_Score_LocatesDefaultReport(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.reports.EXPECT().Locate(candidates).Return(primaryPath, nil).Once()
	mocks.reports.EXPECT().Load(mock.Anything, primaryPath).Return(records(t, 2, 2), nil).Once()
	mocks.ui.EXPECT().DisplayAggregate(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	aggregate, err := gate.Score(context.Background(), domain.ScoreArgs{Candidates: candidates})
	require.NoError(t, err)
	assert.Equal(t, m.Score(50), aggregate.Score())
}

func TestGate_Score_ErrorPropagates(t *testing.T) {
	mocks, gate := newGateMocks(t)

	reports := []m.Path{"a/mutations.xml", "b/mutations.xml"}

	mocks.reports.EXPECT().Load(mock.Anything, reports[0]).Return(records(t, 1, 0), nil).Maybe()
	mocks.reports.EXPECT().Load(mock.Anything, reports[1]).Return(nil, m.ErrParse).Once()

	_, err := gate.Score(context.Background(), domain.ScoreArgs{Reports: reports})
	require.ErrorIs(t, err, m.ErrParse)

	mocks.ui.AssertNotCalled(t, "DisplayAggregate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGate_ShowBaseline(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.baselines.EXPECT().Load(baselinePath).Return(m.Score(81.5), true, nil).Once()
	mocks.ui.EXPECT().DisplayBaseline(mock.Anything, baselinePath, m.Score(81.5), true).Return(nil).Once()

	require.NoError(t, gate.ShowBaseline(context.Background(), domain.BaselineArgs{Baseline: baselinePath}))
}

func TestGate_SetBaseline(t *testing.T) {
	mocks, gate := newGateMocks(t)

	mocks.baselines.EXPECT().Save(baselinePath, m.Score(42.13)).Return(nil).Once()
	mocks.ui.EXPECT().DisplayBaseline(mock.Anything, baselinePath, m.Score(42.13), true).Return(nil).Once()

	err := gate.SetBaseline(context.Background(), domain.SetBaselineArgs{Baseline: baselinePath, Score: 42.126})
	require.NoError(t, err)
}

func TestGate_SetBaseline_RejectsOutOfRange(t *testing.T) {
	for _, score := range []m.Score{-0.01, 100.01} {
		t.Run(score.String(), func(t *testing.T) {
			reports := adaptermocks.NewMockReportAdapter(t)
			baselines := adaptermocks.NewMockBaselineStore(t)
			ui := controllermocks.NewMockUI(t)

			err := domain.NewGate(reports, baselines, ui).SetBaseline(context.Background(),
				domain.SetBaselineArgs{Baseline: baselinePath, Score: score})
			require.ErrorIs(t, err, m.ErrInvalidBaseline)
		})
	}
}
