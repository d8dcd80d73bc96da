package mcp

import (
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document interprets prompts and assembles documents.
	Document driving.DocumentService

	// Clause manages the clause library.
	Clause driving.ClauseService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	// Clause is optional; clause tools and resources degrade gracefully
	return nil
}
