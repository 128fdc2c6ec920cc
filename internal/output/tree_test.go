package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("admin", nil))
}

func TestRenderFileTree_Structure(t *testing.T) {
	out := RenderFileTree("admin", map[string]string{
		"src/public-entry.ts":          StatusCreated,
		"src/locales/de.json":          StatusSkipped,
		"src/layouts/admin.layout.vue": StatusCreated,
		"README.md":                    "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "admin/")

	// directories come first at each level
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, out, "└── README.md")
	assert.Contains(t, out, "public-entry.ts")
	assert.Contains(t, out, StatusSkipped)

	layouts := strings.Index(out, "layouts/")
	locales := strings.Index(out, "locales/")
	assert.Less(t, layouts, locales)
}
