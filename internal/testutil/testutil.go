// Package testutil provides helpers for building host project fixtures in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content below dir, creating parent
// directories. name may contain forward slashes. Returns the file path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// PublishedVersion lays out <host>/<modulesDir>/<name>/<version>/index.js
// plus any extra files (name -> content) and returns the version directory.
func PublishedVersion(t *testing.T, host, modulesDir, name, version string, extra map[string]string) string {
	t.Helper()
	dir := filepath.Join(host, filepath.FromSlash(modulesDir), name, version)
	WriteFile(t, dir, "index.js", "export default {}")
	for file, content := range extra {
		WriteFile(t, dir, file, content)
	}
	return dir
}

// InstalledPackage writes <host>/node_modules/<pkg>/package.json with the
// given manifest and creates each built file with placeholder content.
// Returns the package root.
func InstalledPackage(t *testing.T, host, pkg, packageJSON string, built ...string) string {
	t.Helper()
	root := filepath.Join(host, "node_modules", filepath.FromSlash(pkg))
	WriteFile(t, root, "package.json", packageJSON)
	for _, f := range built {
		WriteFile(t, root, f, "/* "+f+" */")
	}
	return root
}

// RemoteModuleJSON returns a package.json declaring a remote module with a
// dist/index.js entry and a dist/style.css stylesheet.
func RemoteModuleJSON(pkg, module, version string) string {
	return `{
  "name": "` + pkg + `",
  "version": "` + version + `",
  "remoteModule": {
    "name": "` + module + `",
    "entry": "dist/index.js",
    "styles": ["dist/style.css"]
  }
}`
}
