// Package preferences tracks per-workspace-folder project preferences and
// keeps them synchronized with workspace folder changes.
package preferences

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/jsonc"

	"github.com/frckit/pitcrew/internal/workspace"
)

// Language identifies the language family a workspace folder builds with.
type Language string

const (
	// LanguageNone means the folder has not declared a language yet. Deployers
	// treat it as wildcard-applicable.
	LanguageNone Language = "none"
	// LanguageCPP is the C++ robot-project language family.
	LanguageCPP Language = "cpp"
)

// PreferencesFile is the per-folder preference file path, relative to the
// folder root. The file is JSONC: comments and trailing commas are allowed.
const PreferencesFile = ".pitcrew/preferences.json"

type fileData struct {
	CurrentLanguage Language `json:"currentLanguage"`
	Online          bool     `json:"online"`
	StopOnEntry     bool     `json:"stopSimulationOnEntry"`
	TeamNumber      int      `json:"teamNumber"`
}

// Store holds the resolved preferences for one workspace folder. A Store is
// valid only while its folder remains in the open-folder set; the registry
// replaces every Store when that set changes.
type Store struct {
	folder workspace.Folder

	mu     sync.Mutex
	data   fileData
	closed bool
}

// LoadStore reads the folder's preference file and builds a Store. A missing
// or malformed file yields defaults (language "none", offline, no
// stop-on-entry, team 0); preference loading is tolerant by design.
func LoadStore(folder workspace.Folder) *Store {
	s := &Store{
		folder: folder,
		data:   fileData{CurrentLanguage: LanguageNone},
	}

	raw, err := os.ReadFile(filepath.Join(folder.Path, PreferencesFile))
	if err != nil {
		return s
	}

	var data fileData
	if err := json.Unmarshal(jsonc.ToJSON(raw), &data); err != nil {
		return s
	}
	if data.CurrentLanguage == "" {
		data.CurrentLanguage = LanguageNone
	}
	s.data = data
	return s
}

// Folder returns the workspace folder this store belongs to.
func (s *Store) Folder() workspace.Folder {
	return s.folder
}

// CurrentLanguage returns the folder's declared language family.
func (s *Store) CurrentLanguage() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CurrentLanguage
}

// Online reports whether network-dependent build steps may run.
func (s *Store) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Online
}

// StopOnEntry reports whether a debugger or simulator should halt at program
// entry.
func (s *Store) StopOnEntry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.StopOnEntry
}

// TeamNumber returns the team number configured for this folder, 0 when
// unset.
func (s *Store) TeamNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.TeamNumber
}

// Closed reports whether the store has been released by the registry.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the store. Closing an already-closed store is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
