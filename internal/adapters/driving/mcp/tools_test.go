package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

func TestServer_handleInterpret(t *testing.T) {
	ctx := context.Background()

	t.Run("returns interpretation", func(t *testing.T) {
		mockDoc := &mockDocumentService{
			interpretResult: &domain.InterpretResult{
				DocumentType:  domain.DocTypeRentalAgreement,
				Entities:      map[string]string{"landlord": "John Smith"},
				MissingFields: []string{"rent_amount"},
				Status:        domain.InterpretStatusNeedsInput,
			},
		}

		ports := &Ports{Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := InterpretInput{Prompt: "draft a rental agreement"}
		_, output, err := server.handleInterpret(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "rental_agreement", output.DocumentType)
		assert.Equal(t, "John Smith", output.Fields["landlord"])
		assert.Equal(t, []string{"rent_amount"}, output.MissingFields)
		assert.Equal(t, "needs_input", output.Status)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mockDoc := &mockDocumentService{err: errors.New("interpret failed")}
		ports := &Ports{Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleInterpret(ctx, nil, InterpretInput{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interpret failed")
	})
}

func TestServer_handleGenerate(t *testing.T) {
	ctx := context.Background()

	result := &driving.GenerateResult{
		DocumentType:  domain.DocTypeHouseLease,
		Content:       "HOUSE LEASE AGREEMENT",
		MissingFields: []string{"lessee"},
	}

	t.Run("generates from prompt", func(t *testing.T) {
		mockDoc := &mockDocumentService{generateResult: result}
		ports := &Ports{Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := GenerateInput{Prompt: "draft a house lease"}
		_, output, err := server.handleGenerate(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "house_lease", output.DocumentType)
		assert.Equal(t, "HOUSE LEASE AGREEMENT", output.Content)
		assert.Equal(t, []string{"lessee"}, output.MissingFields)
	})

	t.Run("generates from explicit type and fields", func(t *testing.T) {
		mockDoc := &mockDocumentService{generateResult: result}
		ports := &Ports{Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := GenerateInput{
			DocumentType: "house_lease",
			Fields:       map[string]string{"lessor": "John Smith"},
		}
		_, output, err := server.handleGenerate(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "house_lease", output.DocumentType)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mockDoc := &mockDocumentService{err: errors.New("generate failed")}
		ports := &Ports{Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGenerate(ctx, nil, GenerateInput{Prompt: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generate failed")
	})
}

func TestServer_handleClauseSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns clause results", func(t *testing.T) {
		mockClause := &mockClauseService{
			clauses: []domain.Clause{
				{
					ID:           "clause-1",
					Text:         "The tenant shall not sublet the premises.",
					Tags:         []string{"sublet"},
					DocType:      "rental_agreement",
					Jurisdiction: "Chennai",
				},
			},
		}

		ports := &Ports{Document: &mockDocumentService{}, Clause: mockClause}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ClauseSearchInput{Query: "sublet", Limit: 10}
		_, output, err := server.handleClauseSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Clauses, 1)
		assert.Equal(t, "clause-1", output.Clauses[0].ID)
		assert.Equal(t, "rental_agreement", output.Clauses[0].DocType)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		mockClause := &mockClauseService{
			clauses: []domain.Clause{
				{ID: "a"}, {ID: "b"}, {ID: "c"},
			},
		}

		ports := &Ports{Document: &mockDocumentService{}, Clause: mockClause}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := ClauseSearchInput{Query: "", Limit: 2}
		_, output, err := server.handleClauseSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Len(t, output.Clauses, 2)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockClause := &mockClauseService{err: errors.New("search failed")}
		ports := &Ports{Document: &mockDocumentService{}, Clause: mockClause}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleClauseSearch(ctx, nil, ClauseSearchInput{Query: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}
