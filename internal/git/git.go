package git

import (
	"fmt"
	"os/exec"
)

// commitArgs builds the argv handed to git: the composed message as a single
// -m value, then every argument the tool itself received, verbatim.
func commitArgs(message string, extraArgs []string) []string {
	args := []string{"commit", "-m", message}
	return append(args, extraArgs...)
}

// Commit records the commit by invoking the git executable. The child's exit
// status is surfaced: a failed commit (nothing staged, hook rejection, ...)
// returns an error carrying git's output.
func Commit(message string, extraArgs []string) error {
	cmd := exec.Command("git", commitArgs(message, extraArgs)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git commit failed: %v\nOutput: %s", err, string(output))
	}
	return nil
}
