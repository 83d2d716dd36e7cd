package deploy

import (
	"context"
	"fmt"
	"os"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/workspace"
)

type runnerCall struct {
	command      string
	dir          string
	allowNetwork bool
}

type fakeRunner struct {
	calls []runnerCall
	exit  int
	err   error
}

func (r *fakeRunner) Run(_ context.Context, command, dir string, _ workspace.Folder, allowNetwork bool) (int, error) {
	r.calls = append(r.calls, runnerCall{command: command, dir: dir, allowNetwork: allowNetwork})
	return r.exit, r.err
}

type fakeReader struct {
	files map[string][]byte
	reads []string
}

func (r *fakeReader) ReadFile(path string) ([]byte, error) {
	r.reads = append(r.reads, path)
	if data, ok := r.files[path]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
}

type fakePicker struct {
	choice       string
	manyChoice   []string
	cancelSingle bool
	cancelMany   bool
	singleCalls  int
	manyCalls    int
}

func (p *fakePicker) Pick(_ context.Context, items []string, _ string) (string, bool, error) {
	p.singleCalls++
	if p.cancelSingle {
		return "", false, nil
	}
	if p.choice != "" {
		return p.choice, true, nil
	}
	return items[0], true, nil
}

func (p *fakePicker) PickMany(_ context.Context, items []string, _ string) ([]string, bool, error) {
	p.manyCalls++
	if p.cancelMany {
		return nil, false, nil
	}
	if p.manyChoice != nil {
		return p.manyChoice, true, nil
	}
	return items, true, nil
}

type fakeDebugLauncher struct {
	configs []DebugConfig
}

func (l *fakeDebugLauncher) LaunchDebug(_ context.Context, cfg DebugConfig) error {
	l.configs = append(l.configs, cfg)
	return nil
}

type fakeSimLauncher struct {
	configs []SimConfig
}

func (l *fakeSimLauncher) LaunchSim(_ context.Context, cfg SimConfig) error {
	l.configs = append(l.configs, cfg)
	return nil
}

type fakeWinSimLauncher struct {
	configs []WinSimConfig
}

func (l *fakeWinSimLauncher) LaunchWinSim(_ context.Context, cfg WinSimConfig) error {
	l.configs = append(l.configs, cfg)
	return nil
}

// workspaceFolder shortens workspace.NewFolder in table-heavy tests.
func workspaceFolder(path string) workspace.Folder {
	return workspace.NewFolder(path)
}

// newPrefs builds a preferences registry over the given directories.
func newPrefs(dirs ...string) (*preferences.Registry, []workspace.Folder) {
	source := workspace.NewDirSource(dirs...)
	registry := preferences.NewRegistry(source, prefsPicker{})
	return registry, source.Folders()
}

// prefsPicker satisfies preferences.Picker for tests that never prompt.
type prefsPicker struct{}

func (prefsPicker) Pick(_ context.Context, items []string, _ string) (string, bool, error) {
	return items[0], true, nil
}
