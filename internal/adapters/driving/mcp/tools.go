package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

// InterpretInput is the input schema for the interpret tool.
type InterpretInput struct {
	Prompt string `json:"prompt" jsonschema:"free-text description of the document to draft"`
}

// InterpretOutput is the output schema for the interpret tool.
type InterpretOutput struct {
	DocumentType  string            `json:"document_type"`
	Fields        map[string]string `json:"fields"`
	MissingFields []string          `json:"missing_fields"`
	Status        string            `json:"status"`
}

// GenerateInput is the input schema for the generate tool.
type GenerateInput struct {
	Prompt       string            `json:"prompt,omitempty" jsonschema:"free-text prompt to interpret and draft from"`
	DocumentType string            `json:"document_type,omitempty" jsonschema:"explicit document type (rental_agreement, land_sale_deed, power_of_attorney, house_lease)"`
	Language     string            `json:"language,omitempty" jsonschema:"template language code (default en)"`
	Fields       map[string]string `json:"fields,omitempty" jsonschema:"explicit field values, used with document_type"`
}

// GenerateOutput is the output schema for the generate tool.
type GenerateOutput struct {
	DocumentType  string   `json:"document_type"`
	Content       string   `json:"content"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// ClauseSearchInput is the input schema for the clause_search tool.
type ClauseSearchInput struct {
	Query string `json:"query" jsonschema:"substring to match against clause text, tags, type and jurisdiction; empty matches everything"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of clauses to return (default 10)"`
}

// ClauseSearchOutput is the output schema for the clause_search tool.
type ClauseSearchOutput struct {
	Clauses []ClauseOutput `json:"clauses"`
	Count   int            `json:"count"`
}

// ClauseOutput represents a single clause result.
type ClauseOutput struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Tags         []string `json:"tags,omitempty"`
	DocType      string   `json:"doc_type,omitempty"`
	Jurisdiction string   `json:"jurisdiction,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "interpret",
		Description: "Classify a drafting prompt and extract structured field values",
	}, s.handleInterpret)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate",
		Description: "Assemble a legal document from a prompt or explicit field values",
	}, s.handleGenerate)

	if s.ports.Clause != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "clause_search",
			Description: "Search the reusable clause library",
		}, s.handleClauseSearch)
	}
}

// handleInterpret handles the interpret tool invocation.
func (s *Server) handleInterpret(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InterpretInput,
) (*mcp.CallToolResult, InterpretOutput, error) {
	result, err := s.ports.Document.Interpret(ctx, input.Prompt)
	if err != nil {
		return nil, InterpretOutput{}, err
	}

	output := InterpretOutput{
		DocumentType:  result.DocumentType.String(),
		Fields:        result.Entities,
		MissingFields: result.MissingFields,
		Status:        string(result.Status),
	}
	return nil, output, nil
}

// handleGenerate handles the generate tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	var result *driving.GenerateResult
	var err error

	if input.Prompt != "" {
		result, err = s.ports.Document.GenerateFromPrompt(ctx, input.Prompt, input.Language)
	} else {
		docType := domain.DocumentType(input.DocumentType)
		result, err = s.ports.Document.Generate(ctx, driving.GenerateRequest{
			DocumentType: docType,
			Language:     input.Language,
			Fields:       input.Fields,
		})
	}
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	output := GenerateOutput{
		DocumentType:  result.DocumentType.String(),
		Content:       result.Content,
		MissingFields: result.MissingFields,
	}
	return nil, output, nil
}

// handleClauseSearch handles the clause_search tool invocation.
func (s *Server) handleClauseSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClauseSearchInput,
) (*mcp.CallToolResult, ClauseSearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	clauses, err := s.ports.Clause.Search(ctx, input.Query)
	if err != nil {
		return nil, ClauseSearchOutput{}, err
	}
	if len(clauses) > limit {
		clauses = clauses[:limit]
	}

	output := ClauseSearchOutput{
		Clauses: make([]ClauseOutput, len(clauses)),
		Count:   len(clauses),
	}
	for i := range clauses {
		output.Clauses[i] = ClauseOutput{
			ID:           clauses[i].ID,
			Text:         clauses[i].Text,
			Tags:         clauses[i].Tags,
			DocType:      clauses[i].DocType,
			Jurisdiction: clauses[i].Jurisdiction,
		}
	}

	return nil, output, nil
}
