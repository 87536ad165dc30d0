package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write scoregate.yaml with the current gate settings",
		Long: `Write scoregate.yaml to the working directory with the settings the gate
would use right now (defaults, SCOREGATE_* environment and flags), so the
report paths, baseline file and tolerance can be tuned in one place.

An existing file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(target); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			cmd.Printf("Wrote %s\n", target)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing scoregate.yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
