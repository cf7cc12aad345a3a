package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// stats is the snapshot_stats result.
type stats struct {
	GitHubRepos       int      `json:"github_repos"`
	HackerNewsStories int      `json:"hackernews_stories"`
	RSSArticles       int      `json:"rss_articles"`
	Languages         []string `json:"languages"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}

// awaitSnapshot blocks until the store has loaded or failed. The returned
// result is non-nil when the tool cannot proceed.
func (s *Server) awaitSnapshot(ctx context.Context) *mcp.CallToolResult {
	select {
	case <-s.store.Ready():
	case <-ctx.Done():
		return mcp.NewToolResultError("snapshot is still loading")
	}
	if s.store.Status() == loader.StatusFailed {
		return mcp.NewToolResultError(fmt.Sprintf("snapshot failed to load: %v", s.store.Err()))
	}
	return nil
}

// handleRenderSection renders one section for the given selector values.
func (s *Server) handleRenderSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}
	if !viewstate.Section(section).Known() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section %q: use github, hackernews or rss", section)), nil
	}
	if res := s.awaitSnapshot(ctx); res != nil {
		return res, nil
	}

	st := viewstate.Default().
		WithSection(viewstate.Section(section)).
		WithLanguage(request.GetString("language", viewstate.DefaultLanguage)).
		WithSource(request.GetString("source", viewstate.DefaultSource))

	return mcp.NewToolResultText(render.Section(s.store.Snapshot(), st, s.labels)), nil
}

// handleListSources returns the derived source filter values, one per line.
func (s *Server) handleListSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := s.awaitSnapshot(ctx); res != nil {
		return res, nil
	}
	return mcp.NewToolResultText(strings.Join(s.store.Sources(), "\n")), nil
}

// handleSnapshotStats returns the section counts as JSON.
func (s *Server) handleSnapshotStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := s.awaitSnapshot(ctx); res != nil {
		return res, nil
	}

	snap := s.store.Snapshot()
	c := snap.Count()
	out := stats{
		GitHubRepos:       c.GitHubRepos,
		HackerNewsStories: c.HackerNewsStories,
		RSSArticles:       c.RSSArticles,
		Languages:         snap.Languages(),
	}
	if t, ok := snap.Updated(); ok {
		out.UpdatedAt = t.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding stats: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
