package mcp

import (
	"context"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
	"github.com/lexdraft-labs/lexdraft-cli/internal/core/ports/driving"
)

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	interpretResult *domain.InterpretResult
	generateResult  *driving.GenerateResult
	simplified      string
	issues          []domain.ValidationIssue
	err             error
}

func (m *mockDocumentService) Interpret(_ context.Context, _ string) (*domain.InterpretResult, error) {
	return m.interpretResult, m.err
}

func (m *mockDocumentService) Generate(_ context.Context, _ driving.GenerateRequest) (*driving.GenerateResult, error) {
	return m.generateResult, m.err
}

func (m *mockDocumentService) GenerateFromPrompt(_ context.Context, _, _ string) (*driving.GenerateResult, error) {
	return m.generateResult, m.err
}

func (m *mockDocumentService) Simplify(_ context.Context, _ string) (string, error) {
	return m.simplified, m.err
}

func (m *mockDocumentService) Validate(_ context.Context, _ domain.DocumentType, _, _ string) ([]domain.ValidationIssue, error) {
	return m.issues, m.err
}

func (m *mockDocumentService) SaveTemplate(_ context.Context, _ domain.DocumentType, _, _ string) error {
	return m.err
}

// mockClauseService is a mock implementation of driving.ClauseService.
type mockClauseService struct {
	clauses    []domain.Clause
	clause     *domain.Clause
	matches    []domain.DuplicateMatch
	recents    []string
	rendered   string
	timestamps []string
	diff       string
	err        error
}

func (m *mockClauseService) Add(_ context.Context, _ string, _ []string, _, _ string) (*domain.Clause, error) {
	return m.clause, m.err
}

func (m *mockClauseService) Get(_ context.Context, _ string) (*domain.Clause, error) {
	return m.clause, m.err
}

func (m *mockClauseService) Update(_ context.Context, _ string, _ driving.ClauseUpdate) (*domain.Clause, error) {
	return m.clause, m.err
}

func (m *mockClauseService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockClauseService) Search(_ context.Context, _ string) ([]domain.Clause, error) {
	return m.clauses, m.err
}

func (m *mockClauseService) CheckDuplicates(_ context.Context, _ string) ([]domain.DuplicateMatch, error) {
	return m.matches, m.err
}

func (m *mockClauseService) Favorite(_ context.Context, _ string) error {
	return m.err
}

func (m *mockClauseService) Unfavorite(_ context.Context, _ string) error {
	return m.err
}

func (m *mockClauseService) Tag(_ context.Context, _ string, _ []string) error {
	return m.err
}

func (m *mockClauseService) Recents(_ context.Context) ([]string, error) {
	return m.recents, m.err
}

func (m *mockClauseService) Render(_ context.Context, _ string, _ map[string]string) (string, error) {
	return m.rendered, m.err
}

func (m *mockClauseService) Versions(_ context.Context, _ string) ([]string, error) {
	return m.timestamps, m.err
}

func (m *mockClauseService) Diff(_ context.Context, _, _, _ string) (string, error) {
	return m.diff, m.err
}
