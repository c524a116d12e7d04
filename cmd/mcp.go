package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/winnowlabs/winnow/internal/contract"
	"github.com/winnowlabs/winnow/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Winnow MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate narrowing schedules via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The tools carry their own times and day counts per request, so
		// only the enum defaults are seeded here. No status output either:
		// stdio is used for the protocol.
		if err := loadConfigFile(); err != nil {
			return err
		}
		cfg.Interpretation = contract.DefaultInterpretation
		cfg.Rounding = contract.DefaultRounding
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(context.Background(), cfg)
	},
}
