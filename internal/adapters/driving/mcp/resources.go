package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Lexdraft resources.
	uriScheme = "lexdraft://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing clauses.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "clauses",
		Name:        "clauses",
		Description: "List of all stored clauses",
		MIMEType:    "application/json",
	}, s.handleClausesResource)

	// Template for clause bodies.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "clauses/{clauseId}",
		Name:        "clause-text",
		Description: "Text of a specific clause",
		MIMEType:    "text/plain",
	}, s.handleClauseTextResource)
}

// handleClausesResource returns a list of all stored clauses.
func (s *Server) handleClausesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Clause == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	clauses, err := s.ports.Clause.Search(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing clauses: %w", err)
	}

	// Build simplified clause list.
	type clauseInfo struct {
		ID      string   `json:"id"`
		Tags    []string `json:"tags,omitempty"`
		DocType string   `json:"doc_type,omitempty"`
	}

	infos := make([]clauseInfo, len(clauses))
	for i := range clauses {
		infos[i] = clauseInfo{
			ID:      clauses[i].ID,
			Tags:    clauses[i].Tags,
			DocType: clauses[i].DocType,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling clauses: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleClauseTextResource returns the text of a specific clause.
func (s *Server) handleClauseTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Clause == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract clauseId from URI: lexdraft://clauses/{clauseId}
	clauseID := extractClauseID(req.Params.URI)
	if clauseID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	clause, err := s.ports.Clause.Get(ctx, clauseID)
	if err != nil {
		return nil, fmt.Errorf("getting clause: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     clause.Text,
		}},
	}, nil
}

// extractClauseID extracts the clause ID from a URI like lexdraft://clauses/{clauseId}.
func extractClauseID(uri string) string {
	const prefix = uriScheme + "clauses/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
