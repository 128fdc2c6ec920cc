package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	var info struct {
		Version   string `json:"version"`
		GoVersion string `json:"goVersion"`
	}
	decodeJSON(t, out, &info)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)

	out, err = executeCommand(t, "version", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "srm version")
}
