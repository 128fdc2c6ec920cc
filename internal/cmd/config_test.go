package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitAndVet(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "srm", "config.yaml")

	out, err := executeCommand(t, "config", "init", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+cfgFile)
	assert.FileExists(t, cfgFile)

	_, err = executeCommand(t, "config", "init", "--config", cfgFile)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))

	_, err = executeCommand(t, "config", "init", "--config", cfgFile, "--force")
	require.NoError(t, err)

	out, err = executeCommand(t, "config", "vet", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigVet_Invalid(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("modulesDir: 42\nregistry: x\n"), 0o644))

	_, err := executeCommand(t, "config", "vet", "--config", cfgFile)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestConfigVet_Missing(t *testing.T) {
	_, err := executeCommand(t, "config", "vet", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestConfigInit_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := executeCommand(t, "config", "init", "--config", filepath.Join(blocker, "config.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitPermissionDenied, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "Path: "+filepath.Join(blocker, "config.yaml"))
}

func TestConfigVet_NoHomeNoConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HOME", "")

	_, err := runRoot(t, "config", "vet")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}
