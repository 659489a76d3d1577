//go:build unit

package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"os/exec"
	"testing"
)

// os.Exit cannot be intercepted in-process, so the test reruns itself as a subprocess
func TestExitf(t *testing.T) {
	if os.Getenv("SPELLCATALOG_TEST_EXITF") == "1" {
		Exitf("fatal: %s", "table full")
		return
	}

	// Prepare
	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "SPELLCATALOG_TEST_EXITF=1")

	// Execute
	out, err := cmd.CombinedOutput()

	// Check
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "process exited with error")
	assert.Equal(t, 1, exitErr.ExitCode(), "exit code")
	assert.Contains(t, string(out), "fatal: table full", "message on stderr")
}
