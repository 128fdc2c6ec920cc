package cmd

import (
	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/output"
)

// parseOverrides turns repeated name=value flags into ordered overrides.
// Malformed pairs are skipped.
func parseOverrides(flag string, values []string) manifest.Overrides {
	var overrides manifest.Overrides
	for _, raw := range values {
		o, ok := manifest.ParseOverride(raw)
		if !ok {
			output.Debug("ignoring malformed override", "flag", flag, "value", raw)
			continue
		}
		overrides = overrides.Set(o.Name, o.Value)
	}
	return overrides
}
