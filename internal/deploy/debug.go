package deploy

import (
	"context"
	"fmt"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/ui"
	"github.com/frckit/pitcrew/internal/workspace"
	"github.com/frckit/pitcrew/pkg/descriptor"
)

// Debug deploys a debug build of C++ robot code and attaches an external
// debugger to the selected artifact.
type Debug struct {
	prefs    *preferences.Registry
	runner   Runner
	reader   FileReader
	picker   Picker
	launcher DebugLauncher
}

// NewDebug creates the debug strategy.
func NewDebug(prefs *preferences.Registry, runner Runner, reader FileReader, picker Picker, launcher DebugLauncher) *Debug {
	return &Debug{prefs: prefs, runner: runner, reader: reader, picker: picker, launcher: launcher}
}

// IsApplicable implements CodeDeployer.
func (d *Debug) IsApplicable(folder workspace.Folder) bool {
	return applicableTo(d.prefs, folder, preferences.LanguageCPP)
}

// Run builds in debug mode, resolves the artifact to debug (prompting when
// the build produced more than one), and hands a launch configuration to
// the debug launcher. A non-zero build exit short-circuits before any
// descriptor file is read.
func (d *Debug) Run(ctx context.Context, teamNumber int, folder workspace.Folder) (bool, error) {
	command := fmt.Sprintf("deploy -PdebugMode -PteamNumber=%d", teamNumber)
	code, err := d.runner.Run(ctx, command, folder.Path, folder, online(d.prefs, folder))
	if err != nil {
		return false, err
	}
	if code != 0 {
		ui.Error("Debug deploy failed (build exited with code %d)\n", code)
		return false, nil
	}

	raw, err := d.reader.ReadFile(resolveDescriptorPath(folder, debugInfoPath))
	if err != nil {
		return false, fmt.Errorf("reading debug artifact index: %w", err)
	}
	artifacts, err := descriptor.ParseArtifacts(raw)
	if err != nil {
		return false, err
	}
	if len(artifacts) == 0 {
		ui.Warning("The debug build produced no debuggable artifacts\n")
		return false, nil
	}

	chosen := artifacts[0]
	if len(artifacts) > 1 {
		names := make([]string, len(artifacts))
		for i, a := range artifacts {
			names[i] = a.Artifact
		}
		selected, ok, err := d.picker.Pick(ctx, names, "Select an artifact to debug")
		if err != nil {
			return false, err
		}
		if !ok {
			ui.Info("Artifact selection cancelled; debug session not started\n")
			return false, nil
		}
		for i, name := range names {
			if name == selected {
				chosen = artifacts[i]
				break
			}
		}
	}

	rawTarget, err := d.reader.ReadFile(resolveDescriptorPath(folder, chosen.DebugFile))
	if err != nil {
		return false, fmt.Errorf("reading debug descriptor for %s: %w", chosen.Artifact, err)
	}
	target, err := descriptor.ParseTarget(rawTarget)
	if err != nil {
		return false, err
	}

	cfg := DebugConfig{
		Executable:  target.LaunchFile,
		Debugger:    target.GDB,
		LibraryPath: LibraryPath(target.SoFiles),
		SrcPaths:    sourcePaths(target.SrcPaths, target.LibSrcPaths),
		Sysroot:     target.Sysroot,
		Target:      target.Target,
		Folder:      folder,
	}
	if err := d.launcher.LaunchDebug(ctx, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// DisplayName implements CodeDeployer.
func (d *Debug) DisplayName() string {
	return "C++ Debug"
}

// Description implements CodeDeployer.
func (d *Debug) Description() string {
	return "Deploy a debug build and attach a debugger"
}
