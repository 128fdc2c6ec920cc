package publish

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/stratton-cologne/srm/internal/output"
)

//go:embed schema/package.cue
var schemaFS embed.FS

// PackageFileName is the package manifest inside each installed package.
const PackageFileName = "package.json"

// PackageMetadata is the subset of a package manifest the publisher reads.
type PackageMetadata struct {
	Name         string        `json:"name"`
	Version      string        `json:"version"`
	RemoteModule *RemoteModule `json:"remoteModule"`
}

// RemoteModule describes the build artifacts of a remote module package.
type RemoteModule struct {
	// Name is the module name used in the published tree.
	Name string `json:"name"`

	// Entry is the built entry script, relative to the package root.
	Entry string `json:"entry"`

	// Styles are built stylesheets, relative to the package root.
	Styles []string `json:"styles,omitempty"`

	// Assets is an optional asset directory, relative to the package root.
	Assets string `json:"assets,omitempty"`
}

// DescriptorValidator checks package manifests against the embedded CUE schema.
type DescriptorValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewDescriptorValidator compiles the embedded package schema.
func NewDescriptorValidator() (*DescriptorValidator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema/package.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData, cue.Filename("package.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Package"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Package definition")
	}

	return &DescriptorValidator{ctx: ctx, schema: def}, nil
}

// Validate checks raw package manifest JSON.
func (v *DescriptorValidator) Validate(data []byte) error {
	value := v.ctx.CompileBytes(data, cue.Filename(PackageFileName))
	if value.Err() != nil {
		return value.Err()
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}

// readPackageMetadata loads a package manifest. It reports false when the
// package should be skipped: the manifest is missing or malformed, has no
// remoteModule descriptor, or the descriptor fails validation.
func readPackageMetadata(file string, validator *DescriptorValidator) (*PackageMetadata, bool) {
	data, err := os.ReadFile(file)
	if err != nil {
		output.Debug("skipping package without readable manifest", "file", file, "error", err)
		return nil, false
	}

	var probe struct {
		RemoteModule json.RawMessage `json:"remoteModule"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		output.Debug("skipping package with malformed manifest", "file", file, "error", err)
		return nil, false
	}
	if len(probe.RemoteModule) == 0 || string(probe.RemoteModule) == "null" {
		output.Debug("skipping package without remoteModule descriptor", "file", file)
		return nil, false
	}

	if err := validator.Validate(data); err != nil {
		output.Warn("skipping package with invalid remoteModule descriptor", "file", file, "error", err)
		return nil, false
	}

	var meta PackageMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		output.Debug("skipping package with malformed manifest", "file", file, "error", err)
		return nil, false
	}
	return &meta, true
}
