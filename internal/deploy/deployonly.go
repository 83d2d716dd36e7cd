package deploy

import (
	"context"
	"fmt"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/ui"
	"github.com/frckit/pitcrew/internal/workspace"
)

// DeployOnly deploys C++ robot code to the robot controller without
// attaching a debugger.
type DeployOnly struct {
	prefs  *preferences.Registry
	runner Runner
}

// NewDeployOnly creates the deploy-only strategy.
func NewDeployOnly(prefs *preferences.Registry, runner Runner) *DeployOnly {
	return &DeployOnly{prefs: prefs, runner: runner}
}

// IsApplicable implements CodeDeployer.
func (d *DeployOnly) IsApplicable(folder workspace.Folder) bool {
	return applicableTo(d.prefs, folder, preferences.LanguageCPP)
}

// Run builds and deploys robot code for the given team number.
func (d *DeployOnly) Run(ctx context.Context, teamNumber int, folder workspace.Folder) (bool, error) {
	command := fmt.Sprintf("deploy -PteamNumber=%d", teamNumber)
	code, err := d.runner.Run(ctx, command, folder.Path, folder, online(d.prefs, folder))
	if err != nil {
		return false, err
	}
	if code != 0 {
		ui.Error("Deploy failed (build exited with code %d)\n", code)
		return false, nil
	}
	ui.Success("Deployed robot code for team %d\n", teamNumber)
	return true, nil
}

// DisplayName implements CodeDeployer.
func (d *DeployOnly) DisplayName() string {
	return "C++ Deploy"
}

// Description implements CodeDeployer.
func (d *DeployOnly) Description() string {
	return "Deploy C++ robot code to the robot controller"
}
