package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/trendview/internal/loader"
	mcpserver "github.com/ziadkadry99/trendview/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools that render sections of the snapshot and report its sources and counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Tools wait for the load; failures come back as tool errors.
		store := loader.NewStore()
		go store.Run(context.Background(), loader.New(cfg.Snapshot))

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "trendview MCP server started on stdio (snapshot=%s)\n", cfg.Snapshot)

		srv := mcpserver.NewServer(store, cfg.Labels)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
