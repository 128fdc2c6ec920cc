// Package scaffold creates new remote-module skeletons from the embedded
// templates.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/stratton-cologne/srm/internal/errors"
	"github.com/stratton-cologne/srm/internal/fsutil"
	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/output"
	"github.com/stratton-cologne/srm/internal/templates"
)

const (
	// EntryPath is the module entry relative to the module root.
	EntryPath = "src/public-entry.ts"

	fileMode = 0o644
)

// Options configures a scaffold run.
type Options struct {
	// HostDir is the host project root.
	HostDir string

	// Name is the module name; it is normalized to kebab-case.
	Name string

	// Target overrides the module directory.
	Target string

	// AsPackage scaffolds a standalone package under <host>/modules.
	AsPackage bool

	// Route defaults to "/<name>".
	Route string

	// Namespace defaults to the normalized name.
	Namespace string

	// Title defaults to the PascalCase name.
	Title string

	// PkgName is the package.json name; defaults to the normalized name.
	PkgName string

	// Manifest registers the module as a dev entry in the index.
	// Ignored with AsPackage.
	Manifest bool

	// Force overwrites existing files.
	Force bool

	// ModulesDir is the published modules directory used for the index.
	ModulesDir string

	// Now stamps the stylesheet placeholder. Defaults to time.Now.
	Now func() time.Time
}

// Result is the outcome of Scaffold.
type Result struct {
	// Target is the module directory.
	Target string `json:"target"`

	// Created counts the module template files actually written.
	Created int `json:"created"`

	// DevEntry is the in-host entry path, nil for standalone packages.
	DevEntry *string `json:"devEntry"`

	// Files lists every file written, relative to Target.
	Files []string `json:"-"`

	// Skipped lists files left untouched because they already existed.
	Skipped []string `json:"-"`
}

// Scaffold writes a module skeleton. Existing files are kept unless Force is
// set; only written module template files count toward Result.Created.
func Scaffold(ctx context.Context, opts Options) (*Result, error) {
	name := templates.Kebab(strings.TrimSpace(opts.Name))
	if name == "" {
		return nil, oerrors.NewValidationError(
			"module name is required", "", "name",
			"pass the name as an argument or with --name")
	}

	data := templates.TemplateData{
		Name:       name,
		Namespace:  valueOr(opts.Namespace, name),
		Route:      valueOr(opts.Route, "/"+name),
		Title:      valueOr(opts.Title, templates.Pascal(name)),
		PkgName:    valueOr(opts.PkgName, name),
		StyleToken: styleToken(opts.Now),
	}

	target := opts.Target
	switch {
	case target != "":
	case opts.AsPackage:
		target = filepath.Join(opts.HostDir, "modules", name)
	default:
		target = filepath.Join(opts.HostDir, "src", "modules", name)
	}

	for _, dir := range []string{"layouts", "views", "locales"} {
		if err := fsutil.EnsureDir(filepath.Join(target, "src", dir)); err != nil {
			return nil, err
		}
	}

	output.Debug("scaffolding module",
		"name", name,
		"namespace", data.Namespace,
		"target", target,
		"package", opts.AsPackage)

	renderer := templates.NewRenderer(data)
	moduleFiles, err := renderer.RenderTemplate(templates.Module)
	if err != nil {
		return nil, fmt.Errorf("rendering module templates: %w", err)
	}

	result := &Result{Target: target}

	written, err := writeAll(ctx, target, moduleFiles, opts.Force)
	if err != nil {
		return nil, err
	}
	for i, f := range moduleFiles {
		result.record(f.TargetPath, written[i])
		if written[i] {
			result.Created++
		}
	}

	if opts.AsPackage {
		pkgFiles, err := renderer.RenderTemplate(templates.Package)
		if err != nil {
			return nil, fmt.Errorf("rendering package templates: %w", err)
		}
		for _, f := range pkgFiles {
			ok, err := safeWrite(filepath.Join(target, filepath.FromSlash(f.TargetPath)), f.Content, opts.Force)
			if err != nil {
				return nil, err
			}
			result.record(f.TargetPath, ok)
		}
		if err := fsutil.EnsureDir(filepath.Join(target, "dist")); err != nil {
			return nil, err
		}
		return result, nil
	}

	devEntry := path.Join("/src/modules", name, EntryPath)
	result.DevEntry = &devEntry

	if opts.Manifest {
		gen, err := manifest.Generate(manifest.GenerateOptions{
			HostDir:    opts.HostDir,
			ModulesDir: opts.ModulesDir,
			DevEntries: manifest.Overrides{{Name: data.Namespace, Value: devEntry}},
		})
		if err != nil {
			return nil, fmt.Errorf("registering dev entry: %w", err)
		}
		output.Debug("registered dev entry", "index", gen.IndexFile, "entry", devEntry)
	}

	return result, nil
}

func (r *Result) record(rel string, written bool) {
	if written {
		r.Files = append(r.Files, rel)
	} else {
		r.Skipped = append(r.Skipped, rel)
	}
}

// writeAll writes files concurrently and reports which ones were written.
func writeAll(ctx context.Context, target string, files []templates.File, force bool) ([]bool, error) {
	written := make([]bool, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := safeWrite(filepath.Join(target, filepath.FromSlash(f.TargetPath)), f.Content, force)
			written[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

// safeWrite writes content to file unless it exists and force is false.
// It reports whether the file was written.
func safeWrite(file string, content []byte, force bool) (bool, error) {
	if !force {
		exists, err := fsutil.Exists(file)
		if err != nil {
			return false, fmt.Errorf("checking %s: %w", file, err)
		}
		if exists {
			output.Debug("file exists, skipping", "path", file)
			return false, nil
		}
	}

	if err := fsutil.EnsureDir(filepath.Dir(file)); err != nil {
		return false, err
	}
	if err := os.WriteFile(file, content, fileMode); err != nil {
		return false, fmt.Errorf("writing %s: %w", file, err)
	}
	return true, nil
}

// styleToken is the current time in milliseconds, base 36.
func styleToken(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 36)
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
