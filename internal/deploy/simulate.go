package deploy

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/ui"
	"github.com/frckit/pitcrew/internal/workspace"
	"github.com/frckit/pitcrew/pkg/descriptor"
)

// Simulate builds C++ robot code for desktop simulation and launches the
// selected simulation target. Unix and Windows hosts need materially
// different launch parameters (library path injection vs none), so this is
// the one strategy that branches on the host platform.
type Simulate struct {
	prefs  *preferences.Registry
	runner Runner
	reader FileReader
	picker Picker
	sim    SimLauncher
	winSim WinSimLauncher

	// goos defaults to the host platform; tests override it to exercise
	// both branches.
	goos string
}

// NewSimulate creates the simulate strategy.
func NewSimulate(prefs *preferences.Registry, runner Runner, reader FileReader, picker Picker, sim SimLauncher, winSim WinSimLauncher) *Simulate {
	return &Simulate{
		prefs:  prefs,
		runner: runner,
		reader: reader,
		picker: picker,
		sim:    sim,
		winSim: winSim,
		goos:   runtime.GOOS,
	}
}

// IsApplicable implements CodeDeployer.
func (s *Simulate) IsApplicable(folder workspace.Folder) bool {
	return applicableTo(s.prefs, folder, preferences.LanguageCPP)
}

// Run builds for simulation, resolves the target to run (prompting when the
// build produced more than one), optionally prompts for loadable
// extensions, and hands a platform-appropriate configuration to the
// matching simulation launcher.
func (s *Simulate) Run(ctx context.Context, _ int, folder workspace.Folder) (bool, error) {
	code, err := s.runner.Run(ctx, "simulateExternalCpp", folder.Path, folder, online(s.prefs, folder))
	if err != nil {
		return false, err
	}
	if code != 0 {
		ui.Error("Simulation build failed (build exited with code %d)\n", code)
		return false, nil
	}

	raw, err := s.reader.ReadFile(resolveDescriptorPath(folder, simInfoPath))
	if err != nil {
		return false, fmt.Errorf("reading simulation target list: %w", err)
	}
	targets, err := descriptor.ParseTargets(raw)
	if err != nil {
		return false, err
	}
	if len(targets) == 0 {
		ui.Warning("The simulation build produced no runnable targets\n")
		return false, nil
	}

	chosen := targets[0]
	if len(targets) > 1 {
		names := make([]string, len(targets))
		for i, t := range targets {
			names[i] = t.Name
		}
		selected, ok, err := s.picker.Pick(ctx, names, "Select a simulation target")
		if err != nil {
			return false, err
		}
		if !ok {
			ui.Info("Target selection cancelled; simulation not started\n")
			return false, nil
		}
		for i, name := range names {
			if name == selected {
				chosen = targets[i]
				break
			}
		}
	}

	extensions, err := s.pickExtensions(ctx, chosen)
	if err != nil {
		return false, err
	}

	stopOnEntry := false
	if store := s.prefs.Preferences(folder); store != nil {
		stopOnEntry = store.StopOnEntry()
	}

	if s.goos == "windows" {
		cfg := WinSimConfig{
			Executable:  chosen.LaunchFile,
			Extensions:  extensions,
			StopOnEntry: stopOnEntry,
			Folder:      folder,
		}
		if err := s.winSim.LaunchWinSim(ctx, cfg); err != nil {
			return false, err
		}
		return true, nil
	}

	cfg := SimConfig{
		Executable:  chosen.LaunchFile,
		LibraryPath: LibraryPath(chosen.SoFiles),
		Extensions:  extensions,
		StopOnEntry: stopOnEntry,
		Clang:       chosen.Clang,
		Folder:      folder,
	}
	if err := s.sim.LaunchSim(ctx, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// pickExtensions prompts for the loadable extensions the chosen target
// declares and joins the selection with the platform path-list delimiter.
// Dismissing the picker means zero extensions, not failure.
func (s *Simulate) pickExtensions(ctx context.Context, target descriptor.Target) (string, error) {
	if len(target.Extensions) == 0 {
		return "", nil
	}
	selected, ok, err := s.picker.PickMany(ctx, target.Extensions, "Select simulation extensions to load")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return strings.Join(selected, string(os.PathListSeparator)), nil
}

// DisplayName implements CodeDeployer.
func (s *Simulate) DisplayName() string {
	return "C++ Simulate"
}

// Description implements CodeDeployer.
func (s *Simulate) Description() string {
	return "Build and run robot code in desktop simulation"
}
