// Package template renders text templates used for module responses and prompts.
package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Template is a parsed template that can be executed many times.
type Template struct {
	name string
	tmpl *template.Template
}

// Parse compiles templateStr under the given name.
func Parse(name, templateStr string) (*Template, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	return &Template{name: name, tmpl: tmpl}, nil
}

// MustParse is like Parse but panics on error. Use it for package-level templates.
func MustParse(name, templateStr string) *Template {
	t, err := Parse(name, templateStr)
	if err != nil {
		panic(err)
	}

	return t
}

// Execute renders the template with data.
func (t *Template) Execute(data any) (string, error) {
	var buf strings.Builder

	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template '%s': %w", t.name, err)
	}

	return buf.String(), nil
}
