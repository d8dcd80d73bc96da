// Package domain defines the core business entities for Lexdraft.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentType / DocumentTypeSpec / Registry: the fixed set of
//     legal document types and their classification metadata
//   - EntityBag / Annotation: structured data pulled from free text
//   - FieldSet: the final name-to-value mapping used to fill a template
//   - Clause / ClauseMetadata: the reusable clause library entities
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
