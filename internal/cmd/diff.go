package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/output"
)

var (
	diffDevFlags  []string
	diffSpecFlags []string
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what generate would change in index.json",
		Long: `Compare the current index.json with a freshly generated one.

Accepts the same --dev and --spec overrides as generate and never writes
the index. Output is human-readable unless -o is given explicitly.

Examples:
  # Preview changes after publishing
  srm diff

  # Preview a dev override
  srm diff --dev admin=/src/modules/admin/src/public-entry.ts`,
		Args: cobra.NoArgs,
		RunE: runDiff,
	}

	cmd.Flags().StringArrayVar(&diffDevFlags, "dev", nil, "Dev override name=entryPath (repeatable)")
	cmd.Flags().StringArrayVar(&diffSpecFlags, "spec", nil, "External specifier name=specifier (repeatable)")

	return cmd
}

// diffOutput is the printed result of diff.
type diffOutput struct {
	IndexFile string `json:"indexFile"`
	*manifest.DiffResult
}

// Text renders the changes with added, removed and modified sections.
func (d diffOutput) Text() string {
	modified := make([]output.ModifiedItem, 0, len(d.Modified))
	for _, m := range d.Modified {
		modified = append(modified, output.ModifiedItem{Name: m.Key, Diff: m.Diff})
	}
	return output.RenderDiff(d.Added, d.Removed, modified, output.GetStyles())
}

func runDiff(cmd *cobra.Command, args []string) error {
	next, err := manifest.Generate(manifest.GenerateOptions{
		HostDir:     GetHost(),
		ModulesDir:  GetModulesDir(),
		DevEntries:  parseOverrides("dev", diffDevFlags),
		SpecEntries: parseOverrides("spec", diffSpecFlags),
		DryRun:      true,
	})
	if err != nil {
		return err
	}

	current, err := manifest.ReadIndex(next.IndexFile)
	if err != nil {
		return err
	}

	result, err := manifest.Diff(current, next.Refs)
	if err != nil {
		return err
	}

	format := GetOutputFormat()
	if !cmd.Flags().Changed("output") {
		format = output.FormatText
	}
	return output.WriteResult(cmd.OutOrStdout(), format, diffOutput{IndexFile: next.IndexFile, DiffResult: result})
}
