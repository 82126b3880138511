package helpers

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isRunningInCI checks if we're running in a CI/CD environment
func isRunningInCI() bool {
	if os.Getenv("CI") != "" {
		return true
	}
	for _, v := range []string{"GITHUB_ACTIONS", "GITLAB_CI", "BUILDKITE", "JENKINS_URL"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// IsInteractive reports whether w is a terminal a person is looking at.
func IsInteractive(w io.Writer) bool {
	if isRunningInCI() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectFormat resolves OutputFormatAuto: YAML for terminals, JSON otherwise.
func DetectFormat(w io.Writer, requested OutputFormat) OutputFormat {
	if requested != OutputFormatAuto {
		return requested
	}
	if IsInteractive(w) {
		return OutputFormatYAML
	}
	return OutputFormatJSON
}
