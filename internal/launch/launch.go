// Package launch starts external debugger and simulator processes from
// fully-populated launch configurations. Once a session process has
// started, pitcrew treats it as fire-and-forget.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/frckit/pitcrew/internal/deploy"
	"github.com/frckit/pitcrew/internal/env"
)

// Commander abstracts command execution for testing.
type Commander interface {
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

type defaultCommander struct{}

func (c *defaultCommander) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// Debugger runs the descriptor's debugger binary against the built
// executable in the foreground, with source search paths, sysroot, and
// shared-library search path wired into the session.
type Debugger struct {
	commander Commander
}

// NewDebugger creates the exec-based debug launcher.
func NewDebugger() *Debugger {
	return &Debugger{commander: &defaultCommander{}}
}

// LaunchDebug implements deploy.DebugLauncher. The debugger owns the
// terminal until the user quits it; the session ending with a non-zero
// status is not an error.
func (d *Debugger) LaunchDebug(ctx context.Context, cfg deploy.DebugConfig) error {
	cmd := d.commander.CommandContext(ctx, cfg.Debugger, debugArgs(cfg)...)
	cmd.Dir = cfg.Folder.Path
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to start debugger %s: %w. Suggestion: Check that the toolchain from the build descriptor is installed", cfg.Debugger, err)
	}
	return nil
}

// debugArgs assembles the debugger command line from a launch
// configuration. The library search path arrives ";"-joined from the
// descriptor derivation and is handed to the debugger as-is.
func debugArgs(cfg deploy.DebugConfig) []string {
	var args []string
	for _, p := range cfg.SrcPaths {
		args = append(args, "--directory="+p)
	}
	if cfg.Sysroot != "" {
		args = append(args, "-ex", "set sysroot "+cfg.Sysroot)
	}
	if cfg.LibraryPath != "" {
		args = append(args, "-ex", "set solib-search-path "+cfg.LibraryPath)
	}
	args = append(args, cfg.Executable)
	return args
}

// Simulator starts simulation executables in the background with the
// library path and HAL extension environment the target needs.
type Simulator struct {
	commander Commander
	goos      string
}

// NewSimulator creates the exec-based simulation launcher for both the
// Unix and Windows paths.
func NewSimulator() *Simulator {
	return &Simulator{commander: &defaultCommander{}, goos: runtime.GOOS}
}

// LaunchSim implements deploy.SimLauncher.
func (s *Simulator) LaunchSim(ctx context.Context, cfg deploy.SimConfig) error {
	cmd := s.commander.CommandContext(ctx, cfg.Executable)
	cmd.Dir = cfg.Folder.Path
	cmd.Env = simEnv(os.Environ(), cfg, s.goos)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start simulation %s: %w. Suggestion: Run the simulation build again; the executable path comes from the build descriptor", cfg.Executable, err)
	}
	return nil
}

// LaunchWinSim implements deploy.WinSimLauncher.
func (s *Simulator) LaunchWinSim(ctx context.Context, cfg deploy.WinSimConfig) error {
	cmd := s.commander.CommandContext(ctx, cfg.Executable)
	cmd.Dir = cfg.Folder.Path
	cmd.Env = winSimEnv(os.Environ(), cfg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start simulation %s: %w. Suggestion: Run the simulation build again; the executable path comes from the build descriptor", cfg.Executable, err)
	}
	return nil
}

// simEnv assembles the Unix simulation environment: the derived library
// search path is prepended to the loader path variable (DYLD on macOS and
// for clang toolchains, LD otherwise), extensions and stop-on-entry ride
// along as HALSIM variables.
func simEnv(base []string, cfg deploy.SimConfig, goos string) []string {
	out := base
	if cfg.LibraryPath != "" {
		key := "LD_LIBRARY_PATH"
		if goos == "darwin" || cfg.Clang {
			key = "DYLD_LIBRARY_PATH"
		}
		out = env.Prepend(out, key, strings.ReplaceAll(cfg.LibraryPath, ";", ":"), ":")
	}
	if cfg.Extensions != "" {
		out = env.Set(out, "HALSIM_EXTENSIONS", cfg.Extensions)
	}
	if cfg.StopOnEntry {
		out = env.Set(out, "HALSIM_HOLD_ON_START", "1")
	}
	return out
}

// winSimEnv assembles the Windows simulation environment. Windows needs no
// loader path injection; the executable resolves its DLLs next to itself.
func winSimEnv(base []string, cfg deploy.WinSimConfig) []string {
	out := base
	if cfg.Extensions != "" {
		out = env.Set(out, "HALSIM_EXTENSIONS", cfg.Extensions)
	}
	if cfg.StopOnEntry {
		out = env.Set(out, "HALSIM_HOLD_ON_START", "1")
	}
	return out
}
