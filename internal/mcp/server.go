package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/render"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the snapshot's rendered views.
type Server struct {
	store  *loader.Store
	labels render.Labels
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server reading from store.
func NewServer(store *loader.Store, labels render.Labels) *Server {
	s := &Server{
		store:  store,
		labels: labels.WithDefaults(),
	}

	s.mcp = server.NewMCPServer(
		"trendview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(renderSectionTool, s.handleRenderSection)
	s.mcp.AddTool(listSourcesTool, s.handleListSources)
	s.mcp.AddTool(snapshotStatsTool, s.handleSnapshotStats)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
