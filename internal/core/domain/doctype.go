package domain

import "strings"

// DocumentType identifies one of the fixed set of legal documents
// the engine can assemble.
type DocumentType string

// Registered document types.
const (
	// DocTypeRentalAgreement is a residential rental agreement.
	DocTypeRentalAgreement DocumentType = "rental_agreement"

	// DocTypeLandSaleDeed is a deed for the sale of land or property.
	DocTypeLandSaleDeed DocumentType = "land_sale_deed"

	// DocTypePowerOfAttorney delegates authority to act on another's behalf.
	DocTypePowerOfAttorney DocumentType = "power_of_attorney"

	// DocTypeHouseLease is a lease agreement for a house.
	DocTypeHouseLease DocumentType = "house_lease"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTypeRentalAgreement, DocTypeLandSaleDeed, DocTypePowerOfAttorney, DocTypeHouseLease:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Title returns a human-readable heading for the document type.
// Used by exporters as the document title.
func (t DocumentType) Title() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DocumentTypeSpec describes one document type: how to recognise it in
// free text, which fields its templates need, which party roles it
// assigns, and the default values used when the caller supplies none.
//
// Specs are immutable configuration built once at process start.
type DocumentTypeSpec struct {
	// Type is the document type identifier.
	Type DocumentType

	// Keywords are matched (lower-case substring) against prompts
	// during classification. Order is significant only for readability;
	// scoring sums occurrence counts.
	Keywords []string

	// RequiredFields are the fields a caller must supply for a
	// complete document. Missing entries are reported, not fatal.
	RequiredFields []string

	// Roles is the priority order in which detected PERSON spans are
	// assigned to party roles (e.g. landlord before tenant).
	Roles []string

	// Defaults are type-specific field values layered beneath
	// caller-supplied data.
	Defaults map[string]string

	// TemplateName is the base name of the template directory for
	// this type.
	TemplateName string
}

// Registry is an ordered, immutable collection of document type specs.
// Registration order drives the classifier's stable tie-break.
type Registry struct {
	specs []DocumentTypeSpec
	index map[DocumentType]int
}

// NewRegistry builds a registry from the given specs.
// Duplicate types are rejected.
func NewRegistry(specs ...DocumentTypeSpec) (*Registry, error) {
	r := &Registry{
		specs: make([]DocumentTypeSpec, 0, len(specs)),
		index: make(map[DocumentType]int, len(specs)),
	}
	for _, spec := range specs {
		if !spec.Type.IsValid() {
			return nil, ErrUnknownDocumentType
		}
		if _, exists := r.index[spec.Type]; exists {
			return nil, ErrAlreadyExists
		}
		r.index[spec.Type] = len(r.specs)
		r.specs = append(r.specs, spec)
	}
	return r, nil
}

// Spec returns the spec for a document type.
func (r *Registry) Spec(t DocumentType) (DocumentTypeSpec, error) {
	i, ok := r.index[t]
	if !ok {
		return DocumentTypeSpec{}, ErrUnknownDocumentType
	}
	return r.specs[i], nil
}

// Specs returns all specs in registration order.
func (r *Registry) Specs() []DocumentTypeSpec {
	out := make([]DocumentTypeSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Types returns all registered types in registration order.
func (r *Registry) Types() []DocumentType {
	out := make([]DocumentType, len(r.specs))
	for i, spec := range r.specs {
		out[i] = spec.Type
	}
	return out
}

// RequiredFields returns the required field list for a type.
func (r *Registry) RequiredFields(t DocumentType) ([]string, error) {
	spec, err := r.Spec(t)
	if err != nil {
		return nil, err
	}
	fields := make([]string, len(spec.RequiredFields))
	copy(fields, spec.RequiredFields)
	return fields, nil
}
