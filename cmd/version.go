package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the scoregate build version, VCS revision and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range versionLines(info) {
				cmd.Println(line[0]+"\t", line[1])
			}
		},
	}
}

// versionLines lists label/value pairs; the revision is only shown for VCS builds.
func versionLines(info *debug.BuildInfo) [][2]string {
	lines := [][2]string{
		{"scoregate version", info.Main.Version},
		{"go version", info.GoVersion},
		{"module", info.Main.Path},
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			lines = append(lines, [2]string{"revision", setting.Value})
		}
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
