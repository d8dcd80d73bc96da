package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft-labs/lexdraft-cli/internal/core/domain"
)

func TestClauseCmd_Use(t *testing.T) {
	assert.Equal(t, "clause", clauseCmd.Use)
	assert.Equal(t, "Manage the reusable clause library", clauseCmd.Short)
}

func TestClauseCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range clauseCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{
		"add", "update", "delete", "search", "dup",
		"fav", "unfav", "tag", "recent", "render",
	} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestClauseAddCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "add", "The tenant shall not sublet."})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "clause clause-1 added")
}

func TestClauseAddCmd_RequiresText(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "add"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
}

func TestClauseSearchCmd_ListsMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "search", "sublet"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "clause-1")
	assert.Contains(t, buf.String(), "1 clause(s)")
}

func TestClauseSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "search", "sublet", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		clauseJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"id": "clause-1"`)
	assert.Contains(t, buf.String(), `"doc_type": "rental_agreement"`)
}

func TestClauseDeleteCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "delete", "clause-1"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "clause clause-1 deleted")
}

func TestClauseDupCmd_MarksLikelyDuplicates(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	clauseService = &mockClauseService{
		matches: []domain.DuplicateMatch{
			{Clause: domain.Clause{ID: "clause-1"}, Similarity: 1.0, Likely: true},
			{Clause: domain.Clause{ID: "clause-2"}, Similarity: 0.42},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "dup", "The tenant shall not sublet."})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "! 1.000  clause-1")
	assert.Contains(t, buf.String(), "  0.420  clause-2")
}

func TestClauseRecentCmd_ListsIDs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	clauseService = &mockClauseService{recents: []string{"clause-2", "clause-1"}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "recent"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "clause-2\nclause-1\n", buf.String())
}

func TestClauseRenderCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	clauseService = &mockClauseService{rendered: "Pay 15,000 by the 5th."}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "render", "clause-1", "-f", "rent_amount=15,000"})
	defer func() {
		rootCmd.SetArgs(nil)
		clauseRenderFields = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Pay 15,000 by the 5th.")
}

func TestClauseGetNotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	clauseService = &mockClauseService{err: domain.ErrNotFound}

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"clause", "delete", "nope"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "0123456789...", truncate("0123456789abcdef", 10))
}
