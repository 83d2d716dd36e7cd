package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frckit/pitcrew/internal/errors"
)

var debugTeam int

var debugCmd = &cobra.Command{
	Use:   "debug --team <number>",
	Short: "Deploy a debug build and attach a debugger",
	Long: `Build the robot project in debug mode, deploy it, and attach the
toolchain debugger to the built artifact. When the build produces more than
one debuggable artifact, an interactive picker selects which one to debug.`,
	Example: `  # Debug-deploy to team 900's robot
  pitcrew debug --team 900`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if debugTeam <= 0 {
			return errors.NewValidationError(fmt.Sprintf("--team must be a positive team number, got %d", debugTeam), nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDebug(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runDebug(ctx context.Context) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ok, err := s.deployers.Debug(ctx, debugTeam)
	if err != nil {
		return errors.NewRuntimeError("debug deploy did not complete", err)
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}

func init() {
	debugCmd.Flags().IntVar(&debugTeam, "team", 0, "team number the robot controller is configured for")
}
