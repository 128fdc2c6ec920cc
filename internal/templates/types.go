package templates

// Kind identifies a template set.
type Kind string

const (
	// Module is the module source skeleton written for every scaffold.
	Module Kind = "module"

	// Package holds the project files of a standalone package.
	Package Kind = "package"
)

// Template describes a template set.
type Template struct {
	// Name is the template set identifier.
	Name Kind

	// Description explains what the set contains.
	Description string
}

// TemplateData holds the values substituted into templates.
type TemplateData struct {
	// Name is the kebab-case module name (e.g., "user-admin").
	Name string

	// Namespace is the i18n namespace and bundle name.
	Namespace string

	// Route is the base route (e.g., "/user-admin").
	Route string

	// Title is the display title shown in the layout.
	Title string

	// PkgName is the package name written to package.json.
	PkgName string

	// StyleToken is a unique custom property name for the stylesheet placeholder.
	StyleToken string
}

// File is a rendered template.
type File struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the slash-separated output path relative to the module
	// root, with the template suffix removed and name tokens replaced.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}
