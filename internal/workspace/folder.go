// Package workspace models the set of open workspace folders and notifies
// consumers when that set changes.
package workspace

import (
	"path/filepath"
	"strings"
)

// Folder is one root directory treated as a robot project root. Identity is
// the URI; two Folder values refer to the same workspace folder exactly when
// their URIs are equal.
type Folder struct {
	URI  string
	Path string
	Name string
}

// NewFolder builds a Folder for a filesystem directory. Relative paths are
// resolved against the current working directory so that URI identity is
// stable regardless of where the path came from.
func NewFolder(path string) Folder {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return Folder{
		URI:  "file://" + filepath.ToSlash(abs),
		Path: abs,
		Name: filepath.Base(abs),
	}
}

// Equal reports whether two folders share the same identity.
func (f Folder) Equal(other Folder) bool {
	return f.URI == other.URI
}

// String returns the folder name, falling back to the URI when the name is
// empty.
func (f Folder) String() string {
	if f.Name != "" {
		return f.Name
	}
	return strings.TrimPrefix(f.URI, "file://")
}
