package templates

import "fmt"

// templates is the internal registry of template sets.
var templates = map[Kind]Template{
	Module: {
		Name:        Module,
		Description: "Module entry, layout, view, locales and stylesheet",
	},
	Package: {
		Name:        Package,
		Description: "package.json, tsconfig, vite config and README for a standalone package",
	},
}

// Get returns a template set by name.
func Get(name Kind) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: module, package", name)
	}
	return t, nil
}

// List returns all template sets.
func List() []Template {
	return []Template{
		templates[Module],
		templates[Package],
	}
}
