package cmd

import (
	"github.com/frckit/pitcrew/internal/deploy"
	"github.com/frckit/pitcrew/internal/errors"
	"github.com/frckit/pitcrew/internal/gradle"
	"github.com/frckit/pitcrew/internal/launch"
	"github.com/frckit/pitcrew/internal/picker"
	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/workspace"
)

// session wires the full object graph for one command invocation: workspace
// folders → preferences registry → deployer registry with the C++ language
// family registered against the real collaborators.
type session struct {
	source    *workspace.DirSource
	prefs     *preferences.Registry
	deployers *deploy.Registry
	setup     *deploy.Setup
}

func newSession() (*session, error) {
	dirs := workspaceDirs
	if len(dirs) == 0 {
		root, err := workspace.FindRoot()
		if err != nil {
			return nil, errors.NewRuntimeError("failed to locate a workspace folder. Suggestion: Pass --dir or run inside a project directory", err)
		}
		dirs = []string{root}
	}

	source := workspace.NewDirSource(dirs...)
	terminal := picker.NewTerminal()
	prefs := preferences.NewRegistry(source, terminal)
	deployers := deploy.NewRegistry(prefs)

	simulator := launch.NewSimulator()
	setup := deploy.NewSetup(deployers, prefs, deploy.Collaborators{
		Runner: gradle.NewWrapperRunner(),
		Reader: deploy.OSReader{},
		Picker: terminal,
		Debug:  launch.NewDebugger(),
		Sim:    simulator,
		WinSim: simulator,
	}, !noDebugTools)

	return &session{
		source:    source,
		prefs:     prefs,
		deployers: deployers,
		setup:     setup,
	}, nil
}

func (s *session) Close() {
	s.setup.Close()
	s.prefs.Close()
}
