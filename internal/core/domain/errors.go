package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownDocumentType indicates an identifier outside the
	// document type registry. Surfaced immediately, before any
	// partial processing.
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrTemplateNotFound indicates no language-specific, default or
	// embedded fallback template exists for a document type.
	// Generation never silently returns empty text.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplate indicates a caller-supplied template has
	// invalid syntax. The underlying parse error is wrapped.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrVersionNotFound indicates a requested snapshot timestamp
	// does not exist for the named clause or template.
	ErrVersionNotFound = errors.New("version not found")
)
