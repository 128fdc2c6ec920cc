// Package manifest builds the aggregate index.json that tells the host
// application where each remote module lives.
package manifest

// Default file and directory names used in a published module tree.
const (
	// DefaultModulesDir is the modules directory relative to the host root.
	DefaultModulesDir = "public/modules"

	// IndexFileName is the aggregate index written into the modules directory.
	IndexFileName = "index.json"

	// EntryFileName is the canonical entry script of a published version.
	EntryFileName = "index.js"

	// StyleFileName is the stylesheet picked up when no side-car lists styles.
	StyleFileName = "style.css"

	// ManifestFileName is the per-version side-car written by publish.
	ManifestFileName = "manifest.json"

	// DevVersion is the version reported for developer overrides.
	DevVersion = "dev"

	// LatestVersion is reported for specifiers without an embedded version.
	LatestVersion = "latest"
)

// Prefer values tell the host which source to favor for a module name.
const (
	PreferDev  = "dev"
	PreferURL  = "url"
	PreferSpec = "spec"
)

// ModuleReference is one entry of the aggregate index. Exactly one of the
// scan fields (BaseURL, Entry, Styles), EntryDev or Spec is populated.
type ModuleReference struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// Set for modules found on disk.
	BaseURL string   `json:"baseUrl,omitempty"`
	Entry   string   `json:"entry,omitempty"`
	Styles  []string `json:"styles,omitzero"`

	// Set for developer overrides.
	EntryDev string `json:"entryDev,omitempty"`

	// Set for external specifiers.
	Spec string `json:"spec,omitempty"`

	Prefer string `json:"prefer,omitempty"`
}

// Provenance returns which source produced the reference: "dev", "spec" or "url".
func (r ModuleReference) Provenance() string {
	switch {
	case r.EntryDev != "":
		return PreferDev
	case r.Spec != "":
		return PreferSpec
	default:
		return PreferURL
	}
}

// PublishedManifest is the side-car written next to a published version.
type PublishedManifest struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Entry   string   `json:"entry"`
	Styles  []string `json:"styles"`
}

// PublishedRef identifies a published module version.
type PublishedRef struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
