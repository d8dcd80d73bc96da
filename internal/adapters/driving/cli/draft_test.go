package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

func TestSimplifyCmd_Use(t *testing.T) {
	assert.Equal(t, "simplify [text]", simplifyCmd.Use)
}

func TestSimplifyCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	documentService = &mockDocumentService{simplified: "the property mentioned above"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"simplify", "the hereinabove property"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "the property mentioned above")
}

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate [text]", validateCmd.Use)
	assert.NotNil(t, validateCmd.Flags().Lookup("type"))
	assert.NotNil(t, validateCmd.Flags().Lookup("jurisdiction"))
}

func TestValidateCmd_CleanDraft(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"validate", "--type", "rental_agreement", "some draft text"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no issues found")
}

func TestValidateCmd_ReportsIssues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	documentService = &mockDocumentService{
		issues: []domain.ValidationIssue{
			{ID: "payment-terms-missing", Severity: domain.SeverityError, Message: "no payment terms found"},
			{ID: "witnesses-missing", Severity: domain.SeverityWarning, Message: "no witness section found"},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"validate", "--type", "rental_agreement", "some draft text"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "payment-terms-missing: no payment terms found")
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "warning")
}

func TestValidateCmd_UnknownType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"validate", "--type", "shipping_manifest", "text"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
}
