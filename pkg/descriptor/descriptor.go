// Package descriptor parses the JSON descriptor files the robot-project
// build emits for debugging and simulation. The build writes them as JSON
// but editors and users sometimes leave comments or trailing commas behind,
// so parsing is tolerant: comments and trailing commas are stripped before
// unmarshaling, and unknown or missing fields simply yield zero values.
package descriptor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Artifact is one entry in the debuggable-artifact index the debug build
// produces. DebugFile points at the per-artifact Target descriptor.
type Artifact struct {
	DebugFile string `json:"debugfile"`
	Artifact  string `json:"artifact"`
}

// Target is a resolved launch/simulate target descriptor.
type Target struct {
	LaunchFile  string   `json:"launchfile"`
	Target      string   `json:"target"`
	GDB         string   `json:"gdb"`
	Sysroot     string   `json:"sysroot"`
	SrcPaths    []string `json:"srcpaths"`
	SoFiles     []string `json:"sofiles"`
	LibSrcPaths []string `json:"libsrcpaths"`
	Name        string   `json:"name"`
	Extensions  []string `json:"extensions"`
	Clang       bool     `json:"clang"`
}

// ParseArtifacts decodes an artifact index from raw descriptor bytes.
func ParseArtifacts(data []byte) ([]Artifact, error) {
	var artifacts []Artifact
	if err := json.Unmarshal(jsonc.ToJSON(data), &artifacts); err != nil {
		return nil, fmt.Errorf("parsing artifact index: %w", err)
	}
	return artifacts, nil
}

// ParseTarget decodes a single target descriptor from raw descriptor bytes.
func ParseTarget(data []byte) (*Target, error) {
	var target Target
	if err := json.Unmarshal(jsonc.ToJSON(data), &target); err != nil {
		return nil, fmt.Errorf("parsing target descriptor: %w", err)
	}
	return &target, nil
}

// ParseTargets decodes a list of simulation targets from raw descriptor
// bytes.
func ParseTargets(data []byte) ([]Target, error) {
	var targets []Target
	if err := json.Unmarshal(jsonc.ToJSON(data), &targets); err != nil {
		return nil, fmt.Errorf("parsing simulation targets: %w", err)
	}
	return targets, nil
}

// ReadArtifacts reads and parses an artifact index file. A missing or
// unreadable file is an error; callers treat it as fatal for the current
// run.
func ReadArtifacts(path string) ([]Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseArtifacts(data)
}

// ReadTarget reads and parses a single target descriptor file.
func ReadTarget(path string) (*Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTarget(data)
}

// ReadTargets reads and parses a simulation target list file.
func ReadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTargets(data)
}
