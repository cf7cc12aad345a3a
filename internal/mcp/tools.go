package mcp

import "github.com/mark3labs/mcp-go/mcp"

// renderSectionTool defines the render_section MCP tool.
var renderSectionTool = mcp.NewTool("render_section",
	mcp.WithDescription("Render one section of the trends snapshot as an HTML fragment."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section to render"),
		mcp.Enum("github", "hackernews", "rss"),
	),
	mcp.WithString("language",
		mcp.Description("Language for the github section (default python)"),
	),
	mcp.WithString("source",
		mcp.Description("Source filter for the rss section (default all)"),
	),
)

// listSourcesTool defines the list_sources MCP tool.
var listSourcesTool = mcp.NewTool("list_sources",
	mcp.WithDescription("List the RSS source filter values, starting with \"all\"."),
)

// snapshotStatsTool defines the snapshot_stats MCP tool.
var snapshotStatsTool = mcp.NewTool("snapshot_stats",
	mcp.WithDescription("Get item counts per section and the snapshot's last-updated time."),
)
