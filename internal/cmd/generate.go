package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/output"
)

var (
	generateDevFlags  []string
	generateSpecFlags []string
	generateDryFlag   bool
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the modules index",
		Long: `Scan the published modules directory and write index.json.

Every <modules-dir>/<name>/<version>/ directory containing an index.js
becomes an index entry. Dev overrides and external specifiers are
appended in the order given. The index is fully replaced on every run.

Examples:
  # Regenerate public/modules/index.json
  srm generate

  # Point a module at its unbundled dev entry
  srm generate --dev admin=/src/modules/admin/src/public-entry.ts

  # Load a module from a CDN and preview without writing
  srm generate --spec charts=https://cdn.example/charts@2.3.1 --dry`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().StringArrayVar(&generateDevFlags, "dev", nil, "Dev override name=entryPath (repeatable)")
	cmd.Flags().StringArrayVar(&generateSpecFlags, "spec", nil, "External specifier name=specifier (repeatable)")
	cmd.Flags().BoolVar(&generateDryFlag, "dry", false, "Print the index without writing it")

	return cmd
}

// generateOutput is the printed result of generate.
type generateOutput struct {
	IndexFile string                     `json:"indexFile"`
	Count     int                        `json:"count"`
	Refs      []manifest.ModuleReference `json:"refs"`
	dry       bool
}

// Text renders the references as a table.
func (g generateOutput) Text() string {
	var sb strings.Builder
	if len(g.Refs) > 0 {
		tbl := output.NewTable("NAME", "VERSION", "SOURCE", "LOCATION")
		for _, r := range g.Refs {
			tbl.Row(r.Name, r.Version, r.Provenance(), refLocation(r))
		}
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}

	verb := "Wrote"
	if g.dry {
		verb = "Would write"
	}
	sb.WriteString(output.StyleSummary.Render(fmt.Sprintf("%s %d module reference(s) to %s", verb, g.Count, g.IndexFile)))
	sb.WriteString("\n")
	return sb.String()
}

func refLocation(r manifest.ModuleReference) string {
	switch {
	case r.EntryDev != "":
		return r.EntryDev
	case r.Spec != "":
		return r.Spec
	default:
		return r.BaseURL + r.Entry
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	result, err := manifest.Generate(manifest.GenerateOptions{
		HostDir:     GetHost(),
		ModulesDir:  GetModulesDir(),
		DevEntries:  parseOverrides("dev", generateDevFlags),
		SpecEntries: parseOverrides("spec", generateSpecFlags),
		DryRun:      generateDryFlag,
	})
	if err != nil {
		return err
	}

	return writeResult(cmd, generateOutput{
		IndexFile: result.IndexFile,
		Count:     len(result.Refs),
		Refs:      result.Refs,
		dry:       generateDryFlag,
	})
}
