package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frckit/pitcrew/internal/errors"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Build and run robot code in desktop simulation",
	Long: `Build the robot project for desktop simulation and launch the selected
simulation target on this machine. Targets that declare loadable extensions
prompt for which extensions to enable.`,
	Example: `  # Run the robot program in desktop simulation
  pitcrew simulate

  # Simulate without debug tooling registered
  pitcrew simulate --no-debug-tools`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulate(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runSimulate(ctx context.Context) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Simulation runs locally; the team number is not part of the build.
	ok, err := s.deployers.Simulate(ctx, 0)
	if err != nil {
		return errors.NewRuntimeError("simulation did not complete", err)
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}
