//go:build unit

package main

import (
	"bytes"
	"testing"
)

const testSeed = "testdata/spells.yaml"

// runSpellctl runs the command tree with args and captures its output
func runSpellctl(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}
