package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frckit/pitcrew/internal/errors"
)

var deployTeam int

var deployCmd = &cobra.Command{
	Use:   "deploy --team <number>",
	Short: "Build and deploy robot code",
	Long: `Build the robot project and deploy the result to the robot controller
for the given team number. Network access during the build follows the
workspace folder's "online" preference.`,
	Example: `  # Deploy to team 900's robot
  pitcrew deploy --team 900

  # Deploy from a specific workspace folder
  pitcrew deploy --team 900 --dir ./robot`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if deployTeam <= 0 {
			return errors.NewValidationError(fmt.Sprintf("--team must be a positive team number, got %d", deployTeam), nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDeploy(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runDeploy(ctx context.Context) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ok, err := s.deployers.Deploy(ctx, deployTeam)
	if err != nil {
		return errors.NewRuntimeError("deploy did not complete", err)
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}

func init() {
	deployCmd.Flags().IntVar(&deployTeam, "team", 0, "team number the robot controller is configured for")
}
