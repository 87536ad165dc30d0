// Package cmd provides the root command and CLI setup for scoregate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/scoregate/internal/adapter"
	"gooze.dev/pkg/scoregate/internal/controller"
	"gooze.dev/pkg/scoregate/internal/domain"
	m "gooze.dev/pkg/scoregate/internal/model"
)

var formatFlag string
var verboseFlag bool
var logFileFlag string
var baselineFlag string
var survivorsFlag int
var spillDirFlag string

// gateFactory builds the gate for a command. Tests replace it with a mock.
var gateFactory = newGate

const rootLongDescription = `ScoreGate is a CI quality gate for mutation testing. It reads the PIT
mutations.xml report, computes the mutation score (killed / total), compares
it with the score recorded in the baseline file and fails when it drops.

Reports are looked up in order:
  - core/target/pit-reports/mutations.xml
  - target/pit-reports/mutations.xml`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scoregate",
		Short: "Mutation score ratchet for CI",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", defaultOutputFormat, "output format: text, json or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), outputFormatKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVarP(&baselineFlag, baselineFlagName, "b", defaultBaselinePath, "baseline score file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(baselineFlagName), baselinePathKey)

	cmd.PersistentFlags().IntVar(&survivorsFlag, survivorsFlagName, defaultOutputSurvivors, "number of undetected mutations to list (0 hides them)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(survivorsFlagName), outputSurvivorsKey)

	cmd.PersistentFlags().StringVar(&spillDirFlag, spillDirFlagName, defaultSpillDir, "directory for temporary record files (default: system temp dir)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(spillDirFlagName), spillDirKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newGate wires the local adapters and the UI selected by --format.
func newGate(cmd *cobra.Command) (domain.Gate, error) {
	format, err := controller.ParseFormat(viper.GetString(outputFormatKey))
	if err != nil {
		return nil, err
	}

	ui, err := controller.NewUI(cmd, format, controller.IsTTY(cmd.OutOrStdout()))
	if err != nil {
		return nil, err
	}

	return domain.NewGate(
		adapter.NewLocalReportAdapter(viper.GetString(spillDirKey)),
		adapter.NewLocalBaselineStore(),
		ui,
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
