package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/scoregate/internal/domain"
	m "gooze.dev/pkg/scoregate/internal/model"
)

// baselineCmd represents the baseline command.
var baselineCmd = newBaselineCmd()

func newBaselineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Show the recorded baseline score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			gate, err := gateFactory(cmd)
			if err != nil {
				return err
			}

			return gate.ShowBaseline(cmd.Context(), domain.BaselineArgs{
				Baseline: m.Path(viper.GetString(baselinePathKey)),
			})
		},
	}

	cmd.AddCommand(newBaselineSetCmd())

	return cmd
}

func newBaselineSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set SCORE",
		Short: "Overwrite the baseline score",
		Long: `Overwrite the baseline with SCORE, a percentage between 0 and 100.
Use it to accept a lower score deliberately or to reset the gate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := m.ParseScore(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", m.ErrInvalidBaseline, args[0])
			}

			cmd.SilenceUsage = true

			gate, err := gateFactory(cmd)
			if err != nil {
				return err
			}

			return gate.SetBaseline(cmd.Context(), domain.SetBaselineArgs{
				Baseline: m.Path(viper.GetString(baselinePathKey)),
				Score:    score,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(baselineCmd)
}
