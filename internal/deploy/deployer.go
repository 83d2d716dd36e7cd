// Package deploy implements the code-deployer strategies for robot projects
// (deploy-only, debug, simulate) and the registry that selects which
// strategy runs for the active workspace.
package deploy

import (
	"context"
	"os"

	"github.com/frckit/pitcrew/internal/workspace"
)

// CodeDeployer is one build/deploy/debug/simulate strategy for a language
// family. Implementations are stateless across invocations: all per-run
// state travels as parameters or locals inside Run.
type CodeDeployer interface {
	// IsApplicable reports whether this deployer can serve the folder's
	// current language. A folder that has not declared a language yet
	// ("none") is wildcard-applicable. Must not mutate state.
	IsApplicable(folder workspace.Folder) bool
	// Run executes one full cycle and reports whether it succeeded. Ordinary
	// failures (build failure, user cancellation) return (false, nil) after
	// an informational message; errors are reserved for exceptional
	// conditions such as unreadable descriptor files.
	Run(ctx context.Context, teamNumber int, folder workspace.Folder) (bool, error)
	// DisplayName is the short name shown in selection UI.
	DisplayName() string
	// Description is the longer selection-UI description.
	Description() string
}

// Runner runs one build command in a working directory and returns the
// process exit code. Zero means success; the core takes no further action
// for a non-zero code. allowNetwork controls whether the build may reach
// the network.
type Runner interface {
	Run(ctx context.Context, command, dir string, folder workspace.Folder, allowNetwork bool) (int, error)
}

// FileReader reads raw file contents. A missing or unreadable file is an
// error the caller treats as fatal for the current run.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader is the FileReader backed by the local filesystem.
type OSReader struct{}

// ReadFile implements FileReader via os.ReadFile.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Picker presents interactive selection lists. The boolean return is false
// when the user dismissed the picker; dismissal is never an error.
type Picker interface {
	Pick(ctx context.Context, items []string, placeholder string) (string, bool, error)
	PickMany(ctx context.Context, items []string, placeholder string) ([]string, bool, error)
}

// DebugConfig is the fully-populated configuration handed to a debug
// launcher.
type DebugConfig struct {
	Executable  string
	Debugger    string
	LibraryPath string
	SrcPaths    []string
	Sysroot     string
	Target      string
	Folder      workspace.Folder
}

// SimConfig is the configuration for the Unix simulation launcher. Unix
// simulation needs library path injection and the toolchain flag; the
// Windows launcher does not.
type SimConfig struct {
	Executable  string
	LibraryPath string
	Extensions  string
	StopOnEntry bool
	Clang       bool
	Folder      workspace.Folder
}

// WinSimConfig is the configuration for the Windows simulation launcher.
type WinSimConfig struct {
	Executable  string
	Extensions  string
	StopOnEntry bool
	Folder      workspace.Folder
}

// DebugLauncher starts an external debugging session. Fire-and-forget once
// started.
type DebugLauncher interface {
	LaunchDebug(ctx context.Context, cfg DebugConfig) error
}

// SimLauncher starts an external simulation session on a Unix host.
type SimLauncher interface {
	LaunchSim(ctx context.Context, cfg SimConfig) error
}

// WinSimLauncher starts an external simulation session on a Windows host.
type WinSimLauncher interface {
	LaunchWinSim(ctx context.Context, cfg WinSimConfig) error
}
