// Package publish copies built remote-module packages into the published
// modules tree and refreshes the index.
package publish

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/stratton-cologne/srm/internal/fsutil"
	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/output"
)

const (
	// DefaultPackagesDir is where installed packages live, relative to the host.
	DefaultPackagesDir = "node_modules"

	assetsDirName = "assets"
)

// Options configures a publish run.
type Options struct {
	// HostDir is the host project root.
	HostDir string

	// ModulesDir is the published modules directory relative to HostDir.
	ModulesDir string

	// PackagesDir is the installed packages directory relative to HostDir.
	PackagesDir string

	// Packages are package names to publish, in order.
	Packages []string

	// All adds every installed package after Packages.
	All bool
}

// Result is the outcome of Publish.
type Result struct {
	// Published lists the module versions copied, in processing order.
	Published []manifest.PublishedRef `json:"published"`

	// IndexFile is the regenerated index. It is not part of the printed result.
	IndexFile string `json:"-"`
}

// Publish copies the artifacts of each candidate package into
// <modulesDir>/<module>/<version>/, writes a side-car manifest per version,
// and regenerates the index. Packages that are not remote modules are skipped.
func Publish(opts Options) (*Result, error) {
	modulesDir := opts.ModulesDir
	if modulesDir == "" {
		modulesDir = manifest.DefaultModulesDir
	}
	packagesDir := opts.PackagesDir
	if packagesDir == "" {
		packagesDir = DefaultPackagesDir
	}

	absModules := filepath.Join(opts.HostDir, modulesDir)
	if err := fsutil.EnsureDir(absModules); err != nil {
		return nil, err
	}
	absPackages := filepath.Join(opts.HostDir, packagesDir)

	candidates := newCandidateSet()
	for _, name := range opts.Packages {
		candidates.add(name)
	}
	if opts.All {
		candidates.addInstalled(absPackages)
	}

	validator, err := NewDescriptorValidator()
	if err != nil {
		return nil, err
	}

	result := &Result{Published: make([]manifest.PublishedRef, 0)}

	for _, pkgName := range candidates.names {
		ref, ok, err := publishPackage(filepath.Join(absPackages, pkgName), absModules, validator)
		if err != nil {
			return nil, fmt.Errorf("publishing %s: %w", pkgName, err)
		}
		if ok {
			result.Published = append(result.Published, ref)
		}
	}

	gen, err := manifest.Generate(manifest.GenerateOptions{
		HostDir:    opts.HostDir,
		ModulesDir: modulesDir,
	})
	if err != nil {
		return nil, fmt.Errorf("regenerating index: %w", err)
	}
	result.IndexFile = gen.IndexFile

	return result, nil
}

// publishPackage copies one package. It reports false when the package is
// skipped; copy failures are returned.
func publishPackage(pkgRoot, absModules string, validator *DescriptorValidator) (manifest.PublishedRef, bool, error) {
	meta, ok := readPackageMetadata(filepath.Join(pkgRoot, PackageFileName), validator)
	if !ok {
		return manifest.PublishedRef{}, false, nil
	}

	desc := meta.RemoteModule
	modLog := output.ModuleLogger(desc.Name)

	if !isPathSegment(desc.Name) || !isPathSegment(meta.Version) {
		modLog.Debug("skipping package, name or version is not a single path segment",
			"name", desc.Name, "version", meta.Version)
		return manifest.PublishedRef{}, false, nil
	}

	entrySrc := filepath.Join(pkgRoot, desc.Entry)
	if ok, err := fsutil.IsFile(entrySrc); !ok {
		modLog.Debug("skipping package, entry not built", "entry", entrySrc, "error", err)
		return manifest.PublishedRef{}, false, nil
	}

	target := filepath.Join(absModules, desc.Name, meta.Version)
	if err := fsutil.EnsureDir(target); err != nil {
		return manifest.PublishedRef{}, false, err
	}

	if err := fsutil.CopyFile(entrySrc, filepath.Join(target, manifest.EntryFileName)); err != nil {
		return manifest.PublishedRef{}, false, err
	}

	styles := make([]string, 0, len(desc.Styles))
	for _, s := range desc.Styles {
		src := filepath.Join(pkgRoot, s)
		if ok, _ := fsutil.IsFile(src); !ok {
			modLog.Debug("style not found", "style", s)
			continue
		}
		base := path.Base(filepath.ToSlash(s))
		if err := fsutil.CopyFile(src, filepath.Join(target, base)); err != nil {
			return manifest.PublishedRef{}, false, err
		}
		styles = append(styles, base)
	}

	if desc.Assets != "" {
		src := filepath.Join(pkgRoot, desc.Assets)
		if ok, _ := fsutil.IsDir(src); ok {
			if err := fsutil.CopyDir(src, filepath.Join(target, assetsDirName)); err != nil {
				return manifest.PublishedRef{}, false, err
			}
		} else {
			modLog.Debug("assets directory not found", "assets", desc.Assets)
		}
	}

	side := manifest.PublishedManifest{
		Name:    desc.Name,
		Version: meta.Version,
		Entry:   manifest.EntryFileName,
		Styles:  styles,
	}
	if err := fsutil.WriteJSONPretty(filepath.Join(target, manifest.ManifestFileName), side); err != nil {
		return manifest.PublishedRef{}, false, err
	}

	modLog.Info("published", "version", meta.Version, "styles", len(styles))
	return manifest.PublishedRef{Name: desc.Name, Version: meta.Version}, true, nil
}

// isPathSegment reports whether s can be used as one directory name below
// the modules directory.
func isPathSegment(s string) bool {
	return s != "" && s != "." && !strings.Contains(s, "..") && !strings.ContainsAny(s, `/\`)
}
