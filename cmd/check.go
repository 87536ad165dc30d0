package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/scoregate/internal/domain"
	m "gooze.dev/pkg/scoregate/internal/model"
)

var checkReportFlag []string
var checkToleranceFlag float64
var checkDryRunFlag bool
var checkPersistOnRegressionFlag bool

const checkLongDescription = `Score the first existing mutation report and compare it with the baseline.

The baseline file is created on the first run and overwritten with the
current score whenever the gate passes. The command exits with status 1 when
the report is missing or malformed, or when the score dropped below the
baseline by more than the tolerance; the baseline is then left unchanged.`

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when the mutation score dropped below the baseline",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			gate, err := gateFactory(cmd)
			if err != nil {
				return err
			}

			_, err = gate.Check(cmd.Context(), domain.CheckArgs{
				Reports:             parsePaths(viper.GetStringSlice(reportPathsKey)),
				Baseline:            m.Path(viper.GetString(baselinePathKey)),
				Tolerance:           viper.GetFloat64(toleranceKey),
				PersistOnRegression: viper.GetBool(persistOnRegressionKey),
				DryRun:              checkDryRunFlag,
				MaxSurvivors:        viper.GetInt(outputSurvivorsKey),
			})

			return err
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&checkReportFlag, reportFlagName, "r", defaultReportPaths, "candidate report path, checked in order (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportPathsKey)

	cmd.Flags().Float64VarP(&checkToleranceFlag, toleranceFlagName, "t", defaultTolerance, "allowed score drop in percentage points")
	bindFlagToConfig(cmd.Flags().Lookup(toleranceFlagName), toleranceKey)

	cmd.Flags().BoolVar(&checkPersistOnRegressionFlag, persistOnRegressionFlagName, defaultPersistOnRegression, "overwrite the baseline with the lower score after a regression")
	bindFlagToConfig(cmd.Flags().Lookup(persistOnRegressionFlagName), persistOnRegressionKey)

	cmd.Flags().BoolVar(&checkDryRunFlag, dryRunFlagName, false, "compare without writing the baseline and print the change")
}
