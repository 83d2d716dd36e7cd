// Package gradle runs robot-project build commands through the project's
// Gradle wrapper.
package gradle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/frckit/pitcrew/internal/workspace"
)

// Commander abstracts command execution for testing.
type Commander interface {
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

type defaultCommander struct{}

func (c *defaultCommander) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// WrapperRunner runs build commands via the Gradle wrapper checked into the
// workspace folder (gradlew, or gradlew.bat on Windows). It satisfies the
// deploy.Runner contract: the command string is split into Gradle task
// arguments, --offline is appended when network access is not allowed, and
// the process exit code is returned as-is.
type WrapperRunner struct {
	commander Commander
	stdout    io.Writer
	stderr    io.Writer
	goos      string
}

// Option configures a WrapperRunner.
type Option func(*WrapperRunner)

// WithCommander sets a custom commander for testing.
func WithCommander(c Commander) Option {
	return func(r *WrapperRunner) {
		r.commander = c
	}
}

// WithOutput redirects the build's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *WrapperRunner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewWrapperRunner creates a runner that streams build output to the
// process's stdout/stderr.
func NewWrapperRunner(opts ...Option) *WrapperRunner {
	r := &WrapperRunner{
		commander: &defaultCommander{},
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		goos:      runtime.GOOS,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one build command in dir and returns the build's exit code.
// A zero code means success. Failing to start the wrapper at all (missing
// gradlew, bad permissions) is an error, not an exit code.
func (r *WrapperRunner) Run(ctx context.Context, command, dir string, _ workspace.Folder, allowNetwork bool) (int, error) {
	wrapper := filepath.Join(dir, wrapperName(r.goos))
	args := buildArgs(command, allowNetwork)

	cmd := r.commander.CommandContext(ctx, wrapper, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to run the Gradle wrapper: %w. Suggestion: Ensure the workspace folder contains %s and it is executable", err, wrapperName(r.goos))
}

// wrapperName returns the Gradle wrapper script name for the host platform.
func wrapperName(goos string) string {
	if goos == "windows" {
		return "gradlew.bat"
	}
	return "gradlew"
}

// buildArgs splits a build command string into wrapper arguments, appending
// --offline when the build must not touch the network.
func buildArgs(command string, allowNetwork bool) []string {
	args := strings.Fields(command)
	if !allowNetwork {
		args = append(args, "--offline")
	}
	return args
}
