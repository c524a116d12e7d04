// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/winnowlabs/winnow/internal/contract"
)

// NewMCPServer initializes and configures the Winnow MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Winnow Schedule Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: generate_schedule ---
	s.AddTool(mcp.NewTool("generate_schedule",
		mcp.WithDescription("Simulate the daily narrowing of a time window and return one row per simulated day."),
		mcp.WithString("start", mcp.Description("Window start time of day (H:mm or HH:mm)."), mcp.Required()),
		mcp.WithString("end", mcp.Description("Window end time of day (H:mm or HH:mm). May be earlier than start for windows crossing midnight."), mcp.Required()),
		mcp.WithNumber("days", mcp.Description("Number of simulated days (positive integer)."), mcp.Required()),
		mcp.WithString("finish_on_day", mcp.Description("Day-count interpretation. 'inclusive' collapses ON day N; 'after-steps' performs N steps and collapses the next day. Defaults to 'inclusive'."), mcp.Enum("inclusive", "after-steps")),
		mcp.WithString("rounding", mcp.Description("Rounding policy for fractional minute offsets. Defaults to 'nearest'."), mcp.Enum("nearest", "floor", "ceil")),
	), h.handleGenerateSchedule)

	// --- 2. Tool: get_collapse ---
	s.AddTool(mcp.NewTool("get_collapse",
		mcp.WithDescription("Return the collapse instant (temporal midpoint) and length of a daily time window."),
		mcp.WithString("start", mcp.Description("Window start time of day (H:mm or HH:mm)."), mcp.Required()),
		mcp.WithString("end", mcp.Description("Window end time of day (H:mm or HH:mm)."), mcp.Required()),
	), h.handleGetCollapse)

	return s
}

// StartMCPServer starts the Winnow MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
