package services

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// Renderer expands template sources against resolved field sets.
// Rendering is a pure function: the same (source, fields) pair always
// yields identical output.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render expands source against fields. A variable absent from the
// field set resolves to an empty string rather than failing; templates
// carry bracketed placeholders as self-describing gaps where data is
// truly absent.
//
// Bad syntax in the source - including caller-supplied ad-hoc
// templates - returns domain.ErrInvalidTemplate wrapping the parse or
// execute error. Failures are never silently stringified into output.
func (r *Renderer) Render(source string, fields domain.FieldSet) (string, error) {
	tmpl, err := template.New("document").Option("missingkey=zero").Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}

	data := make(map[string]string, len(fields))
	for k, v := range fields {
		data[k] = v
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}
	return buf.String(), nil
}
