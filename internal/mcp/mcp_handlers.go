package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/winnowlabs/winnow/core"
	"github.com/winnowlabs/winnow/internal/contract"
	"github.com/winnowlabs/winnow/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleGenerateSchedule(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	start, err := contract.ParseClock(request.GetString("start", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid start: %v", err)), nil
	}
	cfg.Start = start

	end, err := contract.ParseClock(request.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid end: %v", err)), nil
	}
	cfg.End = end

	cfg.Days = request.GetInt("days", 0)

	if f := request.GetString("finish_on_day", ""); f != "" {
		cfg.Interpretation = schema.Interpretation(f)
	}
	if r := request.GetString("rounding", ""); r != "" {
		cfg.Rounding = schema.RoundingPolicy(r)
	}

	res, err := core.GetScheduleResult(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("schedule generation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(schema.NewScheduleRenderModel(res), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCollapse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := contract.ParseClock(request.GetString("start", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid start: %v", err)), nil
	}
	end, err := contract.ParseClock(request.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid end: %v", err)), nil
	}

	collapse, err := core.CollapseInstant(start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collapse computation failed: %v", err)), nil
	}

	payload := map[string]any{
		"collapse":       collapse.String(),
		"length_minutes": schema.Window{Start: start, End: end}.Length(),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
