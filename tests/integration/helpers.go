//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// isCI returns true if running in a CI environment.
func isCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "TRAVIS", "JENKINS_URL"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// skipIfNoGeminiKey skips the test if GEMINI_API_KEY is not set.
// In CI, it fails unless PROMPTRUN_SKIP_INTEGRATION is set.
func skipIfNoGeminiKey(t *testing.T) {
	t.Helper()
	if os.Getenv("GEMINI_API_KEY") != "" {
		return
	}
	if isCI() && os.Getenv("PROMPTRUN_SKIP_INTEGRATION") == "" {
		t.Fatal("GEMINI_API_KEY not set (CI environment detected; set PROMPTRUN_SKIP_INTEGRATION=1 to skip)")
	}
	t.Skip("GEMINI_API_KEY not set")
}

// getGeminiKey returns the Gemini API key from environment.
func getGeminiKey(t *testing.T) string {
	t.Helper()
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		t.Fatal("GEMINI_API_KEY not set")
	}
	return key
}

// cliResult holds the result of running a CLI command.
type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCLI executes the promptrun binary with the given environment and arguments.
// The environment replaces the parent's, apart from HOME and PATH, so a key
// exported in the developer's shell cannot leak into a test.
func runCLI(t *testing.T, env map[string]string, args ...string) cliResult {
	t.Helper()

	if cliBinary == "" {
		t.Fatal("CLI binary not built - TestMain may not have run")
	}

	cmd := exec.Command(cliBinary, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = []string{"HOME=" + t.TempDir(), "PATH=" + os.Getenv("PATH")}
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("Failed to run CLI: %v", err)
		}
	}

	return cliResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

func hasCallFailureHeader(out string) bool {
	return strings.HasPrefix(out, "Error calling Gemini API:\n")
}
