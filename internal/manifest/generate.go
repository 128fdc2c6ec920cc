package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/stratton-cologne/srm/internal/fsutil"
	"github.com/stratton-cologne/srm/internal/output"
)

// GenerateOptions configures index generation.
type GenerateOptions struct {
	// HostDir is the host project root.
	HostDir string

	// ModulesDir is the modules directory relative to HostDir.
	// Defaults to DefaultModulesDir.
	ModulesDir string

	// DevEntries are appended as developer overrides (version "dev").
	DevEntries Overrides

	// SpecEntries are appended as external specifier entries.
	SpecEntries Overrides

	// DryRun skips writing the index file.
	DryRun bool
}

// GenerateResult is the outcome of Generate.
type GenerateResult struct {
	// Refs is the full reference list in index order.
	Refs []ModuleReference

	// IndexFile is the absolute path of the index, whether or not it was written.
	IndexFile string
}

// Generate scans the modules directory for published versions, appends dev
// and spec overrides, and writes the result to <modulesDir>/index.json
// unless DryRun is set. The written file always replaces the previous one;
// overrides from earlier runs are not carried over.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	modulesDir := opts.ModulesDir
	if modulesDir == "" {
		modulesDir = DefaultModulesDir
	}

	absModules, err := filepath.Abs(filepath.Join(opts.HostDir, modulesDir))
	if err != nil {
		return nil, fmt.Errorf("resolving modules directory: %w", err)
	}

	refs, err := scanModules(absModules, modulesDir)
	if err != nil {
		return nil, err
	}

	for _, dev := range opts.DevEntries.normalized() {
		refs = append(refs, ModuleReference{
			Name:     dev.Name,
			Version:  DevVersion,
			EntryDev: dev.Value,
			Prefer:   PreferDev,
		})
	}

	for _, spec := range opts.SpecEntries.normalized() {
		refs = append(refs, ModuleReference{
			Name:    spec.Name,
			Version: SpecVersion(spec.Value),
			Spec:    spec.Value,
			Prefer:  PreferSpec,
		})
	}

	indexFile := filepath.Join(absModules, IndexFileName)

	if !opts.DryRun {
		if err := fsutil.WriteJSONPretty(indexFile, refs); err != nil {
			return nil, fmt.Errorf("writing index: %w", err)
		}
		output.Debug("index written", "file", indexFile, "refs", len(refs))
	}

	return &GenerateResult{Refs: refs, IndexFile: indexFile}, nil
}

// scanModules lists <absModules>/<name>/<version> directories that contain
// an entry file. A missing modules directory yields no references.
func scanModules(absModules, modulesDir string) ([]ModuleReference, error) {
	refs := make([]ModuleReference, 0)

	isDir, err := fsutil.IsDir(absModules)
	if err != nil {
		return nil, fmt.Errorf("checking modules directory: %w", err)
	}
	if !isDir {
		output.Debug("modules directory not found, skipping scan", "dir", absModules)
		return refs, nil
	}

	names, err := os.ReadDir(absModules)
	if err != nil {
		return nil, fmt.Errorf("reading modules directory: %w", err)
	}

	urlRoot := strings.ReplaceAll(modulesDir, `\`, "/")

	for _, n := range names {
		moduleDir := filepath.Join(absModules, n.Name())
		if ok, _ := fsutil.IsDir(moduleDir); !ok {
			continue
		}

		versions, err := os.ReadDir(moduleDir)
		if err != nil {
			output.Debug("skipping unreadable module directory", "dir", moduleDir, "error", err)
			continue
		}

		for _, v := range versions {
			ref, ok := scanVersion(filepath.Join(moduleDir, v.Name()), n.Name(), v.Name(), urlRoot)
			if ok {
				refs = append(refs, ref)
			}
		}
	}

	return refs, nil
}

// scanVersion builds the reference for a single version directory. It
// returns false when the directory holds no entry file.
func scanVersion(dir, name, version, urlRoot string) (ModuleReference, bool) {
	modLog := output.ModuleLogger(name)

	hasEntry, err := fsutil.Exists(filepath.Join(dir, EntryFileName))
	if err != nil {
		modLog.Debug("skipping version", "version", version, "error", err)
		return ModuleReference{}, false
	}
	if !hasEntry {
		modLog.Debug("skipping version without entry", "version", version)
		return ModuleReference{}, false
	}

	styles := []string{}
	if ok, _ := fsutil.Exists(filepath.Join(dir, StyleFileName)); ok {
		styles = append(styles, StyleFileName)
	}
	if listed, ok := readManifestStyles(filepath.Join(dir, ManifestFileName)); ok {
		styles = listed
	}

	modLog.Debug("found version", "version", version, "styles", len(styles))

	return ModuleReference{
		Name:    name,
		Version: version,
		BaseURL: path.Join("/", urlRoot, name, version) + "/",
		Entry:   EntryFileName,
		Styles:  styles,
	}, true
}

// readManifestStyles returns the styles list of a side-car manifest. It
// reports false when the file is missing, unreadable, malformed, or has no
// array-valued "styles" field.
func readManifestStyles(file string) ([]string, bool) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, false
	}

	var mf struct {
		Styles []string `json:"styles"`
	}
	if err := json.Unmarshal(data, &mf); err != nil {
		output.Debug("ignoring malformed manifest", "file", file, "error", err)
		return nil, false
	}
	if mf.Styles == nil {
		return nil, false
	}
	return mf.Styles, true
}
