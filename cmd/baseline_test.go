package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/scoregate/internal/domain"
	domainmocks "gooze.dev/pkg/scoregate/internal/domain/mocks"
	m "gooze.dev/pkg/scoregate/internal/model"
)

func TestBaselineCmd_Show(t *testing.T) {
	mockGate := domainmocks.NewMockGate(t)
	withGate(t, mockGate)

	cmd, _ := newTestRootCmd(t, newBaselineCmd())

	mockGate.EXPECT().ShowBaseline(mock.Anything, domain.BaselineArgs{Baseline: "ci/score.txt"}).Return(nil).Once()

	cmd.SetArgs([]string{"baseline", "--baseline", "ci/score.txt"})
	require.NoError(t, cmd.Execute())
}

func TestBaselineCmd_Set(t *testing.T) {
	mockGate := domainmocks.NewMockGate(t)
	withGate(t, mockGate)

	cmd, _ := newTestRootCmd(t, newBaselineCmd())

	mockGate.EXPECT().SetBaseline(mock.Anything, domain.SetBaselineArgs{
		Baseline: ".github/mutation_score.txt",
		Score:    81.5,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"baseline", "set", "81.5"})
	require.NoError(t, cmd.Execute())
}

func TestBaselineCmd_SetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"baseline", "set", "high"}},
		{"percent sign", []string{"baseline", "set", "70%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withGate(t, domainmocks.NewMockGate(t))

			cmd, _ := newTestRootCmd(t, newBaselineCmd())

			cmd.SetArgs(tt.args)
			require.ErrorIs(t, cmd.Execute(), m.ErrInvalidBaseline)
		})
	}
}

func TestBaselineCmd_SetRequiresOneArg(t *testing.T) {
	withGate(t, domainmocks.NewMockGate(t))

	cmd, _ := newTestRootCmd(t, newBaselineCmd())

	cmd.SetArgs([]string{"baseline", "set"})
	require.Error(t, cmd.Execute())
}

func TestBaselineCmd_EndToEnd(t *testing.T) {
	cmd, out := newTestRootCmd(t, newBaselineCmd())
	t.Chdir(t.TempDir())

	cmd.SetArgs([]string{"baseline", "set", "--", "66.666"})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(".github/mutation_score.txt")
	require.NoError(t, err)
	assert.Equal(t, "66.67", string(content))
	assert.Contains(t, out.String(), "66.67%")

	cmd.SetArgs([]string{"baseline", "set", "--", "120"})
	require.ErrorIs(t, cmd.Execute(), m.ErrInvalidBaseline)
}
