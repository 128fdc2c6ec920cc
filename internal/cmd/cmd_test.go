package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns stdout.
// HOME and SRM_* variables are isolated so no user config leaks in.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	return runRoot(t, args...)
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, env := range []string{"SRM_CONFIG", "SRM_HOST", "SRM_MODULES_DIR", "SRM_PACKAGES_DIR", "SRM_LOG_TIMESTAMPS"} {
		t.Setenv(env, "")
	}
}

// runRoot executes a fresh root command in the current environment.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}

	root := NewRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	resolvedConfig = nil
	return stdout.String(), err
}

func decodeJSON(t *testing.T, data string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(data), v), data)
}
