package main

import (
	"strings"
	"testing"

	"github.com/adstools/nasa-ads-mcp-server/tools"
)

// The instructions shipped to MCP clients must mention every tool, so
// a tool added to the catalog without updating them fails here.
func TestServerInstructionsListAllTools(t *testing.T) {
	for _, spec := range tools.AllTools {
		if !strings.Contains(serverInstructions, "- "+spec.Name+":") {
			t.Errorf("instructions missing tool %s", spec.Name)
		}
	}
}

func TestServerInstructionsMentionToken(t *testing.T) {
	if !strings.Contains(serverInstructions, "ADS_API_TOKEN") {
		t.Error("instructions should tell users how to configure the API token")
	}
}

func TestServerIdentity(t *testing.T) {
	if ServerName != "nasa-ads-mcp-server" {
		t.Errorf("ServerName = %q", ServerName)
	}
	if ServerVersion == "" {
		t.Error("ServerVersion is empty")
	}
}
