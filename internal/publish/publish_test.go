package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratton-cologne/srm/internal/manifest"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// installPackage writes node_modules/<pkg>/package.json plus the given
// package-relative files.
func installPackage(t *testing.T, host, pkg string, pkgJSON interface{}, files ...string) string {
	t.Helper()
	root := filepath.Join(host, DefaultPackagesDir, filepath.FromSlash(pkg))
	data, err := json.Marshal(pkgJSON)
	require.NoError(t, err)
	writeFile(t, filepath.Join(root, PackageFileName), string(data))
	for _, f := range files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(f)), "/* "+f+" */")
	}
	return root
}

func remotePackage(name, version, module string) map[string]interface{} {
	return map[string]interface{}{
		"name":    name,
		"version": version,
		"remoteModule": map[string]interface{}{
			"name":   module,
			"entry":  "dist/index.js",
			"styles": []string{"dist/style.css"},
			"assets": "dist/assets",
		},
	}
}

func modulesPath(host string, parts ...string) string {
	return filepath.Join(append([]string{host, manifest.DefaultModulesDir}, parts...)...)
}

func TestPublish_CopiesArtifacts(t *testing.T) {
	host := t.TempDir()
	installPackage(t, host, "@acme/admin", remotePackage("@acme/admin", "1.2.0", "admin"),
		"dist/index.js", "dist/style.css", "dist/assets/logo.svg", "dist/assets/img/bg.png")

	result, err := Publish(Options{HostDir: host, Packages: []string{"@acme/admin"}})
	require.NoError(t, err)

	assert.Equal(t, []manifest.PublishedRef{{Name: "admin", Version: "1.2.0"}}, result.Published)
	assert.Equal(t, modulesPath(host, manifest.IndexFileName), result.IndexFile)

	target := modulesPath(host, "admin", "1.2.0")
	entry, err := os.ReadFile(filepath.Join(target, manifest.EntryFileName))
	require.NoError(t, err)
	assert.Equal(t, "/* dist/index.js */", string(entry))
	assert.FileExists(t, filepath.Join(target, "style.css"))
	assert.FileExists(t, filepath.Join(target, "assets", "logo.svg"))
	assert.FileExists(t, filepath.Join(target, "assets", "img", "bg.png"))

	var side manifest.PublishedManifest
	data, err := os.ReadFile(filepath.Join(target, manifest.ManifestFileName))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &side))
	assert.Equal(t, manifest.PublishedManifest{
		Name:    "admin",
		Version: "1.2.0",
		Entry:   "index.js",
		Styles:  []string{"style.css"},
	}, side)

	refs, err := manifest.ReadIndex(result.IndexFile)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "/public/modules/admin/1.2.0/", refs[0].BaseURL)
	assert.Equal(t, []string{"style.css"}, refs[0].Styles)
}

func TestPublish_MissingStylesAndAssetsAreSkipped(t *testing.T) {
	host := t.TempDir()
	installPackage(t, host, "admin", remotePackage("admin", "1.0.0", "admin"), "dist/index.js")

	result, err := Publish(Options{HostDir: host, Packages: []string{"admin"}})
	require.NoError(t, err)
	require.Len(t, result.Published, 1)

	target := modulesPath(host, "admin", "1.0.0")
	assert.NoDirExists(t, filepath.Join(target, "assets"))

	data, err := os.ReadFile(filepath.Join(target, manifest.ManifestFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"styles": []`)
}

func TestPublish_SkipsNonModulePackages(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, host string)
		pkgName string
	}{
		{
			name:    "not installed",
			setup:   func(t *testing.T, host string) {},
			pkgName: "ghost",
		},
		{
			name: "malformed package.json",
			setup: func(t *testing.T, host string) {
				writeFile(t, filepath.Join(host, DefaultPackagesDir, "broken", PackageFileName), "{")
			},
			pkgName: "broken",
		},
		{
			name: "no descriptor",
			setup: func(t *testing.T, host string) {
				installPackage(t, host, "lodash", map[string]interface{}{"name": "lodash", "version": "4.17.21"})
			},
			pkgName: "lodash",
		},
		{
			name: "entry not built",
			setup: func(t *testing.T, host string) {
				installPackage(t, host, "admin", remotePackage("admin", "1.0.0", "admin"))
			},
			pkgName: "admin",
		},
		{
			name: "descriptor without name",
			setup: func(t *testing.T, host string) {
				installPackage(t, host, "admin", map[string]interface{}{
					"version":      "1.0.0",
					"remoteModule": map[string]interface{}{"entry": "dist/index.js"},
				}, "dist/index.js")
			},
			pkgName: "admin",
		},
		{
			name: "styles not a list",
			setup: func(t *testing.T, host string) {
				installPackage(t, host, "admin", map[string]interface{}{
					"version": "1.0.0",
					"remoteModule": map[string]interface{}{
						"name":   "admin",
						"entry":  "dist/index.js",
						"styles": "dist/style.css",
					},
				}, "dist/index.js", "dist/style.css")
			},
			pkgName: "admin",
		},
		{
			name: "package without version",
			setup: func(t *testing.T, host string) {
				installPackage(t, host, "admin", map[string]interface{}{
					"remoteModule": map[string]interface{}{"name": "admin", "entry": "dist/index.js"},
				}, "dist/index.js")
			},
			pkgName: "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := t.TempDir()
			tt.setup(t, host)

			result, err := Publish(Options{HostDir: host, Packages: []string{tt.pkgName}})
			require.NoError(t, err)
			assert.Empty(t, result.Published)

			entries, err := os.ReadDir(modulesPath(host))
			require.NoError(t, err)
			require.Len(t, entries, 1, "only the index should exist")
			assert.Equal(t, manifest.IndexFileName, entries[0].Name())
		})
	}
}

func TestPublish_Twice(t *testing.T) {
	host := t.TempDir()
	root := installPackage(t, host, "admin", remotePackage("admin", "1.0.0", "admin"), "dist/index.js")

	_, err := Publish(Options{HostDir: host, Packages: []string{"admin"}})
	require.NoError(t, err)

	writeFile(t, filepath.Join(root, "dist", "index.js"), "rebuilt")
	result, err := Publish(Options{HostDir: host, Packages: []string{"admin"}})
	require.NoError(t, err)
	require.Len(t, result.Published, 1)

	entry, err := os.ReadFile(modulesPath(host, "admin", "1.0.0", manifest.EntryFileName))
	require.NoError(t, err)
	assert.Equal(t, "rebuilt", string(entry))

	refs, err := manifest.ReadIndex(result.IndexFile)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestPublish_All(t *testing.T) {
	host := t.TempDir()
	installPackage(t, host, "@acme/admin", remotePackage("@acme/admin", "1.0.0", "admin"), "dist/index.js")
	installPackage(t, host, "@acme/shop", remotePackage("@acme/shop", "2.0.0", "shop"), "dist/index.js")
	installPackage(t, host, "zeta", remotePackage("zeta", "0.1.0", "zeta"), "dist/index.js")
	installPackage(t, host, "vue", map[string]interface{}{"name": "vue", "version": "3.4.0"})
	installPackage(t, host, ".cache", remotePackage(".cache", "9.9.9", "hidden"), "dist/index.js")

	result, err := Publish(Options{HostDir: host, Packages: []string{"zeta"}, All: true})
	require.NoError(t, err)

	// explicit packages first, then directory order; duplicates collapse
	assert.Equal(t, []manifest.PublishedRef{
		{Name: "zeta", Version: "0.1.0"},
		{Name: "admin", Version: "1.0.0"},
		{Name: "shop", Version: "2.0.0"},
	}, result.Published)
	assert.NoDirExists(t, modulesPath(host, "hidden"))
}

func TestPublish_AllWithoutPackagesDir(t *testing.T) {
	host := t.TempDir()

	result, err := Publish(Options{HostDir: host, All: true})
	require.NoError(t, err)
	assert.Empty(t, result.Published)
	assert.FileExists(t, result.IndexFile)
}

func TestPublish_CustomDirs(t *testing.T) {
	host := t.TempDir()
	root := filepath.Join(host, "vendor", "pkgs", "admin")
	data, err := json.Marshal(remotePackage("admin", "1.0.0", "admin"))
	require.NoError(t, err)
	writeFile(t, filepath.Join(root, PackageFileName), string(data))
	writeFile(t, filepath.Join(root, "dist", "index.js"), "")

	result, err := Publish(Options{
		HostDir:     host,
		ModulesDir:  "static/remote",
		PackagesDir: "vendor/pkgs",
		Packages:    []string{"admin"},
	})
	require.NoError(t, err)
	require.Len(t, result.Published, 1)
	assert.FileExists(t, filepath.Join(host, "static", "remote", "admin", "1.0.0", "index.js"))
}

func TestPublish_RejectsUnsafeTargetSegments(t *testing.T) {
	host := t.TempDir()
	installPackage(t, host, "escape-version", remotePackage("escape-version", "../../x", "evil"), "dist/index.js")
	installPackage(t, host, "escape-name", remotePackage("escape-name", "1.0.0", "../evil"), "dist/index.js")
	installPackage(t, host, "nested-name", remotePackage("nested-name", "1.0.0", "a/b"), "dist/index.js")
	installPackage(t, host, "ok", remotePackage("ok", "1.0.0", "ok"), "dist/index.js")

	result, err := Publish(Options{
		HostDir:  host,
		Packages: []string{"escape-version", "escape-name", "nested-name", "ok"},
	})
	require.NoError(t, err)

	assert.Equal(t, []manifest.PublishedRef{{Name: "ok", Version: "1.0.0"}}, result.Published)
	assert.NoDirExists(t, filepath.Join(host, "x"))
	assert.NoDirExists(t, filepath.Join(host, "public", "evil"))
	assert.NoDirExists(t, modulesPath(host, "a"))
}

func TestIsPathSegment(t *testing.T) {
	for _, s := range []string{"admin", "1.0.0", "1.0.0-rc.1", "@next"} {
		assert.True(t, isPathSegment(s), s)
	}
	for _, s := range []string{"", ".", "..", "../x", "a/b", `a\b`, "1..2"} {
		assert.False(t, isPathSegment(s), s)
	}
}
