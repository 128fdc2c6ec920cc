// Package templates provides the embedded scaffold templates and rendering.
package templates

import "embed"

// TemplateFS holds the module and package templates. The all: prefix keeps
// files whose names start with an underscore, such as __name__ tokens.
//
//go:embed all:module all:package
var TemplateFS embed.FS

// NameToken is replaced by the module name in template paths.
const NameToken = "__name__"

// templateSuffix is stripped from template paths.
const templateSuffix = ".tmpl"
