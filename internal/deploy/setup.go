package deploy

import "github.com/frckit/pitcrew/internal/preferences"

// Collaborators bundles the external collaborators the C++ strategies run
// against: the build runner, descriptor file reader, interactive picker,
// and the three launchers.
type Collaborators struct {
	Runner Runner
	Reader FileReader
	Picker Picker
	Debug  DebugLauncher
	Sim    SimLauncher
	WinSim WinSimLauncher
}

// Setup is the composition root for the C++ language family. It owns no
// resources; the strategies it registers hold none either.
type Setup struct{}

// NewSetup registers the C++ language with the deployer registry: always
// the deploy-only strategy, plus debug and simulate when the host supports
// debugging tools (allowDebug).
func NewSetup(reg *Registry, prefs *preferences.Registry, c Collaborators, allowDebug bool) *Setup {
	reg.AddLanguageChoice(preferences.LanguageCPP)
	reg.RegisterCodeDeploy(NewDeployOnly(prefs, c.Runner))
	if allowDebug {
		reg.RegisterCodeDebug(NewDebug(prefs, c.Runner, c.Reader, c.Picker, c.Debug))
		reg.RegisterCodeSimulate(NewSimulate(prefs, c.Runner, c.Reader, c.Picker, c.Sim, c.WinSim))
	}
	return &Setup{}
}

// Close implements the session teardown hook. The composition root has
// nothing to release.
func (s *Setup) Close() error {
	return nil
}
