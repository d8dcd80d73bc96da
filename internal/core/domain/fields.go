package domain

// FieldSet is the final name-to-value mapping used to fill a template.
type FieldSet map[string]string

// MergeFields layers field mappings lowest-precedence first.
// Later layers overwrite identical keys; keys present only in earlier
// layers remain. Nil layers are skipped.
func MergeFields(layers ...map[string]string) FieldSet {
	merged := make(FieldSet)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Clone returns a copy of the field set.
func (f FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// InterpretStatus reports the outcome of an interpret call.
type InterpretStatus string

const (
	// InterpretStatusOK means all required fields were extracted.
	InterpretStatusOK InterpretStatus = "ok"

	// InterpretStatusNeedsInput means some required fields are still
	// missing and the caller should re-prompt the user.
	InterpretStatusNeedsInput InterpretStatus = "needs_input"
)

// InterpretResult is the structured outcome of classifying and
// extracting a free-text prompt.
type InterpretResult struct {
	// DocumentType is the classified type.
	DocumentType DocumentType `json:"document_type"`

	// Entities are the extracted field candidates.
	Entities map[string]string `json:"extracted_entities"`

	// MissingFields lists required fields absent from the extracted
	// data. Informational, not fatal.
	MissingFields []string `json:"missing_fields"`

	// Status is ok or needs_input.
	Status InterpretStatus `json:"status"`
}

// ValidationSeverity grades a draft validation issue.
type ValidationSeverity string

// Validation severities.
const (
	SeverityInfo    ValidationSeverity = "info"
	SeverityWarning ValidationSeverity = "warning"
	SeverityError   ValidationSeverity = "error"
)

// ValidationIssue is a single finding from draft validation.
type ValidationIssue struct {
	// ID identifies the rule that fired.
	ID string `json:"id"`

	// Severity is info, warning or error.
	Severity ValidationSeverity `json:"severity"`

	// Message explains the finding.
	Message string `json:"message"`
}
