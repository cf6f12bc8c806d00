// ABOUTME: MCP resource implementations for fitness records.
// ABOUTME: Provides fitlog://records with the full log as JSON.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const recordsURI = "fitlog://records"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recordsURI,
		Name:        "Fitness Records",
		Description: "Every logged fitness session in insertion order",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)
}

func (s *Server) handleRecordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	data, err := json.MarshalIndent(map[string]any{
		"count":   len(records),
		"records": records,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      recordsURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
