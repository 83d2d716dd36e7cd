// Package cmd defines command-line interface commands for pitcrew.
package cmd

import (
	"github.com/spf13/cobra"
)

var version string

var (
	workspaceDirs []string
	noDebugTools  bool
)

var rootCmd = &cobra.Command{
	Use:   "pitcrew",
	Short: "Robot-project build, deploy, and simulation CLI",
	Long: `pitcrew drives a Gradle-based robot project: deploy code to the robot
controller, attach a debugger to a deployed build, or run the code in
desktop simulation, across one or more workspace folders.`,
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&workspaceDirs, "dir", nil, "workspace folder (repeatable; defaults to the git repository root)")
	rootCmd.PersistentFlags().BoolVar(&noDebugTools, "no-debug-tools", false, "register deploy support only, without debug and simulation")
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(prefsCmd)
}
