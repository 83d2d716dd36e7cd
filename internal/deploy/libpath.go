package deploy

import (
	"path/filepath"
	"strings"
)

// LibraryPath derives a library search path from a shared-object file list:
// the containing directory of each file, de-duplicated by directory (not by
// file), joined with ";" in first-seen order.
func LibraryPath(soFiles []string) string {
	seen := make(map[string]struct{}, len(soFiles))
	var dirs []string
	for _, f := range soFiles {
		dir := filepath.Dir(f)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return strings.Join(dirs, ";")
}

// sourcePaths merges the descriptor's source and library-source search paths
// into one de-duplicated set, preserving first-seen order.
func sourcePaths(srcPaths, libSrcPaths []string) []string {
	seen := make(map[string]struct{}, len(srcPaths)+len(libSrcPaths))
	var out []string
	for _, p := range append(append([]string{}, srcPaths...), libSrcPaths...) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
