package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/stratton-cologne/srm/internal/errors"
	"github.com/stratton-cologne/srm/internal/output"
	"github.com/stratton-cologne/srm/internal/scaffold"
	"github.com/stratton-cologne/srm/internal/templates"
)

var (
	scaffoldNameFlag      string
	scaffoldAsPackageFlag bool
	scaffoldTargetFlag    string
	scaffoldRouteFlag     string
	scaffoldNamespaceFlag string
	scaffoldTitleFlag     string
	scaffoldPkgNameFlag   string
	scaffoldManifestFlag  bool
	scaffoldForceFlag     bool
)

// NewScaffoldCmd creates the scaffold command.
func NewScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold [name]",
		Short: "Create a new module skeleton",
		Long: `Create a new remote module from the built-in templates.

In-host modules are created under src/modules/<name>; standalone packages
(--as-package) under modules/<name> with package.json, tsconfig.json,
vite.config.ts and README.md. Existing files are kept unless --force is
given.

` + templateHelp() + `
Examples:
  # Scaffold an in-host module and register its dev entry in index.json
  srm scaffold user-admin --manifest

  # Scaffold a standalone package
  srm scaffold shop --as-package --pkg-name @acme/shop`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScaffold,
	}

	cmd.Flags().StringVar(&scaffoldNameFlag, "name", "", "Module name (alternative to the positional argument)")
	cmd.Flags().BoolVar(&scaffoldAsPackageFlag, "as-package", false, "Scaffold a standalone package")
	cmd.Flags().StringVar(&scaffoldTargetFlag, "target", "", "Target directory (default src/modules/<name> or modules/<name>)")
	cmd.Flags().StringVar(&scaffoldRouteFlag, "route", "", "Base route (default /<name>)")
	cmd.Flags().StringVar(&scaffoldNamespaceFlag, "namespace", "", "i18n namespace (default <name>)")
	cmd.Flags().StringVar(&scaffoldTitleFlag, "title", "", "Display title (default PascalCase name)")
	cmd.Flags().StringVar(&scaffoldPkgNameFlag, "pkg-name", "", "package.json name for --as-package (default <name>)")
	cmd.Flags().BoolVar(&scaffoldManifestFlag, "manifest", false, "Register the module as a dev entry in index.json")
	cmd.Flags().BoolVarP(&scaffoldForceFlag, "force", "f", false, "Overwrite existing files")

	return cmd
}

// templateHelp lists the embedded template sets and the files each one
// writes. __name__ stands for the module name.
func templateHelp() string {
	var sb strings.Builder
	sb.WriteString("Templates:\n")
	for _, t := range templates.List() {
		fmt.Fprintf(&sb, "  %-8s %s\n", t.Name, t.Description)
		files, err := templates.ListTemplateFiles(t.Name)
		if err != nil {
			continue
		}
		for _, f := range files {
			fmt.Fprintf(&sb, "           %s\n", f)
		}
	}
	return sb.String()
}

// scaffoldOutput is the printed result of scaffold.
type scaffoldOutput struct {
	*scaffold.Result
}

// Text renders the written and skipped files as a tree.
func (s scaffoldOutput) Text() string {
	files := make(map[string]string, len(s.Files)+len(s.Skipped))
	for _, f := range s.Files {
		files[f] = output.StatusCreated
	}
	for _, f := range s.Skipped {
		files[f] = output.StatusSkipped
	}

	var sb strings.Builder
	sb.WriteString(output.RenderFileTree(filepath.Base(s.Target), files))
	sb.WriteString("\n")
	sb.WriteString(output.FormatCheckmark(fmt.Sprintf("Created %d file(s) in %s", s.Created, s.Target)))
	sb.WriteString("\n")
	if s.DevEntry != nil {
		sb.WriteString(output.StyleDim.Render("Dev entry: " + *s.DevEntry))
		sb.WriteString("\n")
	}
	return sb.String()
}

func runScaffold(cmd *cobra.Command, args []string) error {
	name := scaffoldNameFlag
	if len(args) > 0 {
		name = args[0]
	}
	if strings.TrimSpace(name) == "" {
		return NewExitError(oerrors.NewValidationError(
			"module name is required", "", "name",
			"Usage: srm scaffold <name> [--as-package] [--manifest]"), ExitGeneralError)
	}

	result, err := scaffold.Scaffold(cmd.Context(), scaffold.Options{
		HostDir:    GetHost(),
		Name:       name,
		Target:     scaffoldTargetFlag,
		AsPackage:  scaffoldAsPackageFlag,
		Route:      scaffoldRouteFlag,
		Namespace:  scaffoldNamespaceFlag,
		Title:      scaffoldTitleFlag,
		PkgName:    scaffoldPkgNameFlag,
		Manifest:   scaffoldManifestFlag,
		Force:      scaffoldForceFlag,
		ModulesDir: GetModulesDir(),
	})
	if err != nil {
		return err
	}

	return writeResult(cmd, scaffoldOutput{result})
}
