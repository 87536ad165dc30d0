package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/scoregate/internal/domain"
)

var scoreParallelFlag int

const scoreLongDescription = `Print the mutation score of one or more reports without touching the baseline.

With no arguments the first existing default report is scored. Several
reports (for example one per module) are parsed in parallel and an aggregate
score is printed.`

// scoreCmd represents the score command.
var scoreCmd = newScoreCmd()

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [reports...]",
		Short: "Print the mutation score of PIT reports",
		Long:  scoreLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			gate, err := gateFactory(cmd)
			if err != nil {
				return err
			}

			_, err = gate.Score(cmd.Context(), domain.ScoreArgs{
				Reports:      parsePaths(args),
				Candidates:   parsePaths(viper.GetStringSlice(reportPathsKey)),
				Threads:      viper.GetInt(scoreParallelKey),
				MaxSurvivors: viper.GetInt(outputSurvivorsKey),
			})

			return err
		},
	}

	configureScoreFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func configureScoreFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scoreParallelFlag, scoreParallelFlagName, "p", defaultScoreParallel, "number of reports parsed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(scoreParallelFlagName), scoreParallelKey)
}
