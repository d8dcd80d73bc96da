package services

import (
	"time"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

// FieldResolver layers default data beneath caller-supplied values to
// produce the final field set for rendering.
type FieldResolver struct {
	registry *domain.Registry
	now      func() time.Time
}

// NewFieldResolver creates a field resolver. now is injected so
// rendering stays deterministic under test; nil means time.Now.
func NewFieldResolver(registry *domain.Registry, now func() time.Time) *FieldResolver {
	if now == nil {
		now = time.Now
	}
	return &FieldResolver{registry: registry, now: now}
}

// genericDefaults is the lowest-precedence layer: execution date
// components, standard witness placeholders and the jurisdiction
// placeholder shared by every document type.
func (r *FieldResolver) genericDefaults() map[string]string {
	now := r.now()
	return map[string]string{
		"date":                now.Format("02"),
		"month":               now.Format("January"),
		"year":                now.Format("2006"),
		"execution_date":      now.Format("02/01/2006"),
		"execution_place":     "City",
		"jurisdiction":        "[Jurisdiction]",
		"witness_one_name":    "[Witness 1 Name]",
		"witness_one_address": "[Witness 1 Address]",
		"witness_two_name":    "[Witness 2 Name]",
		"witness_two_address": "[Witness 2 Address]",
	}
}

// Resolve merges the three field layers, lowest precedence first:
// generic defaults, then the document type's default table, then
// caller-supplied values. Later layers win on key collision; keys
// present only in earlier layers remain.
//
// Required fields still missing after the supplied layer render as
// bracketed placeholders, e.g. [Landlord Name].
func (r *FieldResolver) Resolve(docType domain.DocumentType, supplied map[string]string) (domain.FieldSet, error) {
	spec, err := r.registry.Spec(docType)
	if err != nil {
		return nil, err
	}

	fields := domain.MergeFields(r.genericDefaults(), spec.Defaults, supplied)

	for _, required := range spec.RequiredFields {
		if _, ok := fields[required]; !ok {
			fields[required] = placeholderFor(required)
		}
	}
	return fields, nil
}

// Missing computes required fields absent from the supplied layer.
// Only caller-supplied data counts: the check tells the caller what
// the user still needs to provide, so defaults do not satisfy it.
func (r *FieldResolver) Missing(docType domain.DocumentType, supplied map[string]string) ([]string, error) {
	spec, err := r.registry.Spec(docType)
	if err != nil {
		return nil, err
	}

	missing := []string{}
	for _, required := range spec.RequiredFields {
		if v, ok := supplied[required]; !ok || v == "" {
			missing = append(missing, required)
		}
	}
	return missing, nil
}

// placeholderFor turns a field name into a self-describing bracketed
// gap: "landlord" becomes "[Landlord]", "rent_amount" "[Rent Amount]".
func placeholderFor(field string) string {
	words := []byte(field)
	upper := true
	for i, c := range words {
		switch {
		case c == '_':
			words[i] = ' '
			upper = true
		case upper && c >= 'a' && c <= 'z':
			words[i] = c - 'a' + 'A'
			upper = false
		default:
			upper = false
		}
	}
	return "[" + string(words) + "]"
}
