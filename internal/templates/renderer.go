package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(FuncMap()).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderTemplate renders every file of a template set in lexical path order.
func (r *Renderer) RenderTemplate(kind Kind) ([]File, error) {
	if _, err := Get(kind); err != nil {
		return nil, err
	}

	root := string(kind)
	var files []File

	err := fs.WalkDir(TemplateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, templateSuffix) {
			return nil
		}

		content, err := fs.ReadFile(TemplateFS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rendered, err := r.RenderFile(path, content)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}

		files = append(files, File{
			SourcePath: path,
			TargetPath: targetPath(root, path, r.data.Name),
			Content:    rendered,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template %s: %w", kind, err)
	}

	return files, nil
}

// ListTemplateFiles returns the target paths of a template set without
// rendering. Name tokens are left in place.
func ListTemplateFiles(kind Kind) ([]string, error) {
	if _, err := Get(kind); err != nil {
		return nil, err
	}

	root := string(kind)
	var files []string

	err := fs.WalkDir(TemplateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, templateSuffix) {
			return nil
		}
		files = append(files, targetPath(root, path, NameToken))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", kind, err)
	}

	return files, nil
}

func targetPath(root, path, name string) string {
	rel := strings.TrimPrefix(path, root+"/")
	rel = strings.TrimSuffix(rel, templateSuffix)
	return strings.ReplaceAll(rel, NameToken, name)
}
