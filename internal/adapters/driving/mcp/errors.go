// Package mcp provides an MCP (Model Context Protocol) server adapter for Lexdraft.
// It enables AI assistants like Claude to interpret prompts, assemble legal
// documents and query the clause library.
package mcp

import "errors"

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
