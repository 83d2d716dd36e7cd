package deploy

import (
	"path/filepath"

	"github.com/frckit/pitcrew/internal/preferences"
	"github.com/frckit/pitcrew/internal/workspace"
)

// Build-produced descriptor locations, relative to the workspace folder
// root. The build step owns these paths; pitcrew only reads them.
var (
	debugInfoPath = filepath.Join("build", "debug", "debuginfo.json")
	simInfoPath   = filepath.Join("build", "sim", "siminfo.json")
)

// applicableTo reports whether a deployer targeting lang can serve the
// folder. A missing store or a "none" language preference is treated as
// wildcard-applicable so a freshly opened project can still deploy.
func applicableTo(prefs *preferences.Registry, folder workspace.Folder, lang preferences.Language) bool {
	store := prefs.Preferences(folder)
	if store == nil {
		return true
	}
	current := store.CurrentLanguage()
	return current == lang || current == preferences.LanguageNone
}

// online reports whether the folder's preferences allow network-dependent
// build steps. Defaults to offline when no store exists.
func online(prefs *preferences.Registry, folder workspace.Folder) bool {
	store := prefs.Preferences(folder)
	return store != nil && store.Online()
}

// resolveDescriptorPath anchors a descriptor-relative path at the workspace
// folder root; absolute paths from the descriptor pass through unchanged.
func resolveDescriptorPath(folder workspace.Folder, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(folder.Path, path)
}
