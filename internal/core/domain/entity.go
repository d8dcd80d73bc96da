package domain

// EntityLabel is the semantic category assigned to a text span by the
// annotator. Only a subset of labels is consumed by the engine.
type EntityLabel string

// Labels consumed by the extractor. Annotators may emit others;
// they are ignored.
const (
	// LabelPerson marks a personal name.
	LabelPerson EntityLabel = "PERSON"

	// LabelGPE marks a geopolitical entity (city, state, country).
	LabelGPE EntityLabel = "GPE"

	// LabelLocation marks a non-political location.
	LabelLocation EntityLabel = "LOC"
)

// IsLocation returns true for labels treated as locations.
func (l EntityLabel) IsLocation() bool {
	return l == LabelGPE || l == LabelLocation
}

// Annotation is a text span tagged with a semantic category,
// as produced by the annotator capability.
type Annotation struct {
	// Text is the span text as it appeared in the input.
	Text string

	// Label is the semantic category.
	Label EntityLabel
}

// EntityBag holds everything extracted from a single prompt.
// It is built fresh per request and discarded after rendering.
type EntityBag struct {
	// Fields maps template field names to extracted values.
	// Role assignment writes party names here (landlord, tenant, ...).
	Fields map[string]string

	// Names are the PERSON spans in encounter order.
	Names []string

	// Amounts are currency-formatted numbers in encounter order.
	Amounts []string

	// Dates are date surface forms in encounter order.
	Dates []string

	// Locations are location spans and prepositional-phrase matches.
	Locations []string

	// Durations are "<number> <unit>" matches.
	Durations []string

	// Ages are bare age numbers from "N years old" / "aged N" forms.
	Ages []string

	// Parentage are names following "S/o" markers.
	Parentage []string
}

// NewEntityBag returns an empty bag.
func NewEntityBag() *EntityBag {
	return &EntityBag{Fields: make(map[string]string)}
}

// SetIfAbsent records a field value only when the field is not already
// filled. Role assignment is first-match-wins: an earlier span never
// gets overwritten by a later one.
func (b *EntityBag) SetIfAbsent(field, value string) bool {
	if _, ok := b.Fields[field]; ok {
		return false
	}
	b.Fields[field] = value
	return true
}

// Has reports whether a field has been filled.
func (b *EntityBag) Has(field string) bool {
	_, ok := b.Fields[field]
	return ok
}
