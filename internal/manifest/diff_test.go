package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefKey(t *testing.T) {
	assert.Equal(t, "admin@1.0.0", RefKey(ModuleReference{Name: "admin", Version: "1.0.0", BaseURL: "/x/"}))
	assert.Equal(t, "admin@dev (dev)", RefKey(ModuleReference{Name: "admin", Version: "dev", EntryDev: "/a.ts"}))
	assert.Equal(t, "bar@2.3.1 (spec)", RefKey(ModuleReference{Name: "bar", Version: "2.3.1", Spec: "bar@2.3.1"}))
}

func TestDiff(t *testing.T) {
	previous := []ModuleReference{
		{Name: "admin", Version: "1.0.0", BaseURL: "/m/admin/1.0.0/", Entry: "index.js", Styles: []string{"style.css"}},
		{Name: "legacy", Version: "0.1.0", BaseURL: "/m/legacy/0.1.0/", Entry: "index.js", Styles: []string{}},
		{Name: "shop", Version: "dev", EntryDev: "/src/shop.ts", Prefer: "dev"},
	}
	next := []ModuleReference{
		{Name: "admin", Version: "1.0.0", BaseURL: "/m/admin/1.0.0/", Entry: "index.js", Styles: []string{"a.css", "b.css"}},
		{Name: "admin", Version: "1.1.0", BaseURL: "/m/admin/1.1.0/", Entry: "index.js", Styles: []string{}},
		{Name: "shop", Version: "dev", EntryDev: "/src/shop.ts", Prefer: "dev"},
	}

	result, err := Diff(previous, next)
	require.NoError(t, err)

	assert.Equal(t, []string{"admin@1.1.0"}, result.Added)
	assert.Equal(t, []string{"legacy@0.1.0"}, result.Removed)
	require.Len(t, result.Modified, 1)
	assert.Equal(t, "admin@1.0.0", result.Modified[0].Key)
	assert.NotEmpty(t, result.Modified[0].Diff)
	assert.Contains(t, result.Modified[0].Diff, "styles")
	assert.False(t, result.IsEmpty())
}

func TestDiff_NoChanges(t *testing.T) {
	refs := []ModuleReference{
		{Name: "admin", Version: "1.0.0", BaseURL: "/m/admin/1.0.0/", Entry: "index.js", Styles: []string{}},
	}
	withNilStyles := []ModuleReference{
		{Name: "admin", Version: "1.0.0", BaseURL: "/m/admin/1.0.0/", Entry: "index.js"},
	}

	result, err := Diff(withNilStyles, refs)
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestReadIndex(t *testing.T) {
	dir := t.TempDir()

	refs, err := ReadIndex(filepath.Join(dir, IndexFileName))
	require.NoError(t, err)
	assert.Empty(t, refs)

	writeFile(t, dir, IndexFileName, `[{"name":"admin","version":"dev","entryDev":"/a.ts","prefer":"dev"}]`)
	refs, err = ReadIndex(filepath.Join(dir, IndexFileName))
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "/a.ts", refs[0].EntryDev)

	writeFile(t, dir, "broken.json", `{`)
	_, err = ReadIndex(filepath.Join(dir, "broken.json"))
	assert.Error(t, err)
}
