package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/output"
	"github.com/stratton-cologne/srm/internal/publish"
)

var (
	publishPackagesFlag []string
	publishAllFlag      bool
)

// NewPublishCmd creates the publish command.
func NewPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Copy built module packages into the modules directory",
		Long: `Publish remote modules from installed packages.

Each candidate package's package.json must declare a "remoteModule"
descriptor:

  "remoteModule": {
    "name": "admin",
    "entry": "dist/index.js",
    "styles": ["dist/style.css"],
    "assets": "dist/assets"
  }

Artifacts are copied to <modules-dir>/<name>/<version>/ and the index is
regenerated. Packages without a valid descriptor or built entry are
skipped.

Examples:
  # Publish two packages
  srm publish --packages @acme/admin,@acme/shop

  # Publish every installed remote module
  srm publish --all`,
		Args: cobra.NoArgs,
		RunE: runPublish,
	}

	cmd.Flags().StringSliceVar(&publishPackagesFlag, "packages", nil, "Package names to publish (comma-separated)")
	cmd.Flags().BoolVar(&publishAllFlag, "all", false, "Publish every installed package that declares a remote module")

	return cmd
}

// publishOutput is the printed result of publish.
type publishOutput struct {
	*publish.Result
}

// Text renders one checkmark line per published module.
func (p publishOutput) Text() string {
	if len(p.Published) == 0 {
		return output.StyleDim.Render("No modules published") + "\n"
	}

	var sb strings.Builder
	for _, ref := range p.Published {
		sb.WriteString(output.FormatModuleLine(ref.Name, ref.Version, output.StatusPublished))
		sb.WriteString("\n")
	}
	sb.WriteString(output.FormatCheckmark(fmt.Sprintf("Published %d module(s), index %s", len(p.Published), p.IndexFile)))
	sb.WriteString("\n")
	return sb.String()
}

func runPublish(cmd *cobra.Command, args []string) error {
	opts := publish.Options{
		HostDir:     GetHost(),
		ModulesDir:  GetModulesDir(),
		PackagesDir: GetPackagesDir(),
		Packages:    publishPackagesFlag,
		All:         publishAllFlag,
	}

	var result *publish.Result
	err := output.RunWithSpinner(cmd.Context(), "Publishing modules...", func() error {
		var err error
		result, err = publish.Publish(opts)
		return err
	})
	if err != nil {
		return err
	}

	return writeResult(cmd, publishOutput{result})
}
