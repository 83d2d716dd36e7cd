package workspace

import (
	"os"
	"os/exec"
	"strings"
)

// FindRoot finds the default workspace folder path when none is given on the
// command line: the git repository root from `git rev-parse --show-toplevel`,
// or the current working directory when not inside a git repository.
func FindRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err == nil {
		return strings.TrimSpace(string(output)), nil
	}
	return os.Getwd()
}
