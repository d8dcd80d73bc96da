package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Use(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "MCP server commands", mcpCmd.Short)
}

func TestMCPServeCmd_Use(t *testing.T) {
	assert.Equal(t, "serve", mcpServeCmd.Use)
	assert.Equal(t, "Start the MCP server", mcpServeCmd.Short)
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RegisteredUnderMCP(t *testing.T) {
	found := false
	for _, sub := range mcpCmd.Commands() {
		if sub.Name() == "serve" {
			found = true
		}
	}
	assert.True(t, found)
}
