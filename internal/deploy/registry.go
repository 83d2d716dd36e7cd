package deploy

import (
	"context"
	"sync"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/ui"
)

// Registry accepts deployer registrations keyed by role (deploy, debug,
// simulate) and, at invocation time, selects and runs the deployer that is
// applicable to the active workspace's language. Registration is additive;
// nothing is rolled back within a session. When more than one registered
// deployer is applicable (a "none" language matches every family), the
// first registered wins.
type Registry struct {
	prefs *preferences.Registry

	mu         sync.Mutex
	languages  []preferences.Language
	deployers  []CodeDeployer
	debuggers  []CodeDeployer
	simulators []CodeDeployer
}

// NewRegistry creates an empty deployer registry bound to the preferences
// registry it resolves workspaces through.
func NewRegistry(prefs *preferences.Registry) *Registry {
	return &Registry{prefs: prefs}
}

// AddLanguageChoice records a language tag a language family has registered
// for. The tag list feeds selection UI.
func (r *Registry) AddLanguageChoice(tag preferences.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.languages = append(r.languages, tag)
}

// Languages returns the registered language tags in registration order.
func (r *Registry) Languages() []preferences.Language {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]preferences.Language, len(r.languages))
	copy(out, r.languages)
	return out
}

// RegisterCodeDeploy registers a deploy-only strategy.
func (r *Registry) RegisterCodeDeploy(d CodeDeployer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deployers = append(r.deployers, d)
}

// RegisterCodeDebug registers a debug strategy.
func (r *Registry) RegisterCodeDebug(d CodeDeployer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debuggers = append(r.debuggers, d)
}

// RegisterCodeSimulate registers a simulate strategy.
func (r *Registry) RegisterCodeSimulate(d CodeDeployer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulators = append(r.simulators, d)
}

// Deploy resolves the active workspace and runs the applicable deploy-only
// strategy.
func (r *Registry) Deploy(ctx context.Context, teamNumber int) (bool, error) {
	r.mu.Lock()
	candidates := append([]CodeDeployer(nil), r.deployers...)
	r.mu.Unlock()
	return r.invoke(ctx, teamNumber, candidates, "deploy")
}

// Debug resolves the active workspace and runs the applicable debug
// strategy.
func (r *Registry) Debug(ctx context.Context, teamNumber int) (bool, error) {
	r.mu.Lock()
	candidates := append([]CodeDeployer(nil), r.debuggers...)
	r.mu.Unlock()
	return r.invoke(ctx, teamNumber, candidates, "debug")
}

// Simulate resolves the active workspace and runs the applicable simulate
// strategy.
func (r *Registry) Simulate(ctx context.Context, teamNumber int) (bool, error) {
	r.mu.Lock()
	candidates := append([]CodeDeployer(nil), r.simulators...)
	r.mu.Unlock()
	return r.invoke(ctx, teamNumber, candidates, "simulate")
}

func (r *Registry) invoke(ctx context.Context, teamNumber int, candidates []CodeDeployer, role string) (bool, error) {
	folder, ok, err := r.prefs.FirstOrSelectedWorkspace(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		ui.Info("No workspace folder selected; nothing to %s\n", role)
		return false, nil
	}
	for _, d := range candidates {
		if d.IsApplicable(folder) {
			return d.Run(ctx, teamNumber, folder)
		}
	}
	ui.Warning("No %s support is registered for the language of %s\n", role, folder.String())
	return false, nil
}
