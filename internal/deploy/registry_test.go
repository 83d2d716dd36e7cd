package deploy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/workspace"
)

// scriptedDeployer records invocations and answers applicability from a
// fixed language tag.
type scriptedDeployer struct {
	name  string
	lang  preferences.Language
	prefs *preferences.Registry
	runs  int
}

func (d *scriptedDeployer) IsApplicable(folder workspace.Folder) bool {
	return applicableTo(d.prefs, folder, d.lang)
}

func (d *scriptedDeployer) Run(context.Context, int, workspace.Folder) (bool, error) {
	d.runs++
	return true, nil
}

func (d *scriptedDeployer) DisplayName() string { return d.name }
func (d *scriptedDeployer) Description() string { return d.name }

func writeLanguage(t *testing.T, dir string, lang preferences.Language) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".pitcrew"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".pitcrew", "preferences.json"),
		[]byte(`{"currentLanguage": "`+string(lang)+`"}`), 0644))
}

func TestRegistrySelectsByLanguage(t *testing.T) {
	dir := t.TempDir()
	writeLanguage(t, dir, preferences.LanguageCPP)
	prefs, _ := newPrefs(dir)
	defer prefs.Close()

	reg := NewRegistry(prefs)
	other := &scriptedDeployer{name: "java", lang: preferences.Language("java"), prefs: prefs}
	cpp := &scriptedDeployer{name: "cpp", lang: preferences.LanguageCPP, prefs: prefs}
	reg.RegisterCodeDeploy(other)
	reg.RegisterCodeDeploy(cpp)

	ok, err := reg.Deploy(context.Background(), 900)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, cpp.runs)
	assert.Zero(t, other.runs)
}

func TestRegistryNoneLanguageFirstRegisteredWins(t *testing.T) {
	prefs, _ := newPrefs(t.TempDir())
	defer prefs.Close()

	reg := NewRegistry(prefs)
	first := &scriptedDeployer{name: "first", lang: preferences.Language("java"), prefs: prefs}
	second := &scriptedDeployer{name: "second", lang: preferences.LanguageCPP, prefs: prefs}
	reg.RegisterCodeDeploy(first)
	reg.RegisterCodeDeploy(second)

	ok, err := reg.Deploy(context.Background(), 900)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, first.runs, "a 'none' workspace matches every family; first registered wins")
	assert.Zero(t, second.runs)
}

func TestRegistryNoApplicableDeployer(t *testing.T) {
	dir := t.TempDir()
	writeLanguage(t, dir, preferences.Language("java"))
	prefs, _ := newPrefs(dir)
	defer prefs.Close()

	reg := NewRegistry(prefs)
	cpp := &scriptedDeployer{name: "cpp", lang: preferences.LanguageCPP, prefs: prefs}
	reg.RegisterCodeDeploy(cpp)

	ok, err := reg.Deploy(context.Background(), 900)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, cpp.runs)
}

func TestRegistryNoWorkspace(t *testing.T) {
	prefs, _ := newPrefs()
	defer prefs.Close()

	reg := NewRegistry(prefs)
	d := &scriptedDeployer{name: "cpp", lang: preferences.LanguageCPP, prefs: prefs}
	reg.RegisterCodeDeploy(d)

	ok, err := reg.Deploy(context.Background(), 900)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, d.runs)
}

func TestRegistryRolesAreIndependent(t *testing.T) {
	prefs, _ := newPrefs(t.TempDir())
	defer prefs.Close()

	reg := NewRegistry(prefs)
	deployOnly := &scriptedDeployer{name: "deploy", lang: preferences.LanguageCPP, prefs: prefs}
	reg.RegisterCodeDeploy(deployOnly)

	ok, err := reg.Debug(context.Background(), 900)
	require.NoError(t, err)
	assert.False(t, ok, "no debug strategy registered")
	assert.Zero(t, deployOnly.runs)
}

func TestSetupRegistration(t *testing.T) {
	prefs, _ := newPrefs(t.TempDir())
	defer prefs.Close()

	collaborators := Collaborators{
		Runner: &fakeRunner{},
		Reader: &fakeReader{},
		Picker: &fakePicker{},
		Debug:  &fakeDebugLauncher{},
		Sim:    &fakeSimLauncher{},
		WinSim: &fakeWinSimLauncher{},
	}

	t.Run("debug tools allowed", func(t *testing.T) {
		reg := NewRegistry(prefs)
		setup := NewSetup(reg, prefs, collaborators, true)
		defer setup.Close()

		assert.Equal(t, []preferences.Language{preferences.LanguageCPP}, reg.Languages())
		assert.Len(t, reg.deployers, 1)
		assert.Len(t, reg.debuggers, 1)
		assert.Len(t, reg.simulators, 1)
	})

	t.Run("debug tools disallowed", func(t *testing.T) {
		reg := NewRegistry(prefs)
		setup := NewSetup(reg, prefs, collaborators, false)
		defer setup.Close()

		assert.Len(t, reg.deployers, 1)
		assert.Empty(t, reg.debuggers)
		assert.Empty(t, reg.simulators)
	})

	t.Run("close is a no-op", func(t *testing.T) {
		reg := NewRegistry(prefs)
		setup := NewSetup(reg, prefs, collaborators, true)
		require.NoError(t, setup.Close())
		require.NoError(t, setup.Close())
	})
}
