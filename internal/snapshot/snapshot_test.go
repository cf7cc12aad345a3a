package snapshot

import (
	"strings"
	"testing"
	"time"
)

const sampleJSON = `{
  "updated_at": "2025-01-15T08:30:00.123456",
  "date": "2025-01-15",
  "github_trending": {
    "python": [
      {"name": "x/y", "url": "https://github.com/x/y", "description": "d", "stars": "1,234", "stars_today": "56", "forks": "0", "language": "Python"}
    ],
    "go": []
  },
  "hackernews": [
    {"id": 1, "title": "Show HN", "url": "https://a.com", "score": 120, "hn_url": "https://news.ycombinator.com/item?id=1", "comments": 45, "author": "pg", "time": "2025-01-15 07:00:00", "timestamp": 1736924400}
  ],
  "rss_feeds": [
    {"source": "Go Blog", "title": "A", "url": "https://go.dev/a", "summary": "", "author": "Unknown", "published": "2025-01-14 10:00:00"},
    {"source": "InfoQ", "title": "B", "url": "https://infoq.com/b", "author": "Jane", "published": "2025-01-14 11:00:00"},
    {"source": "Go Blog", "title": "C", "url": "https://go.dev/c", "author": "Rob", "published": "2025-01-14 12:00:00"},
    {"source": "", "title": "D", "url": "https://d.com", "author": "x", "published": "2025-01-14 13:00:00"}
  ],
  "statistics": {"github_repos": 1, "hackernews_stories": 1, "rss_articles": 4, "total": 6}
}`

func decodeSample(t *testing.T) *Snapshot {
	t.Helper()
	s, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return s
}

func TestDecode(t *testing.T) {
	s := decodeSample(t)

	repos := s.Repos("python")
	if len(repos) != 1 {
		t.Fatalf("python repos = %d, want 1", len(repos))
	}
	if repos[0].Stars != "1,234" {
		t.Errorf("stars = %q, want %q", repos[0].Stars, "1,234")
	}
	if repos[0].Forks != "0" {
		t.Errorf("forks = %q, want %q", repos[0].Forks, "0")
	}

	stories := s.Stories()
	if len(stories) != 1 {
		t.Fatalf("stories = %d, want 1", len(stories))
	}
	if stories[0].Score != "120" {
		t.Errorf("numeric score decoded as %q, want %q", stories[0].Score, "120")
	}
	if stories[0].Comments != "45" {
		t.Errorf("numeric comments decoded as %q, want %q", stories[0].Comments, "45")
	}
	if stories[0].CommentsURL != "https://news.ycombinator.com/item?id=1" {
		t.Errorf("hn_url = %q", stories[0].CommentsURL)
	}

	if s.Statistics == nil || s.Statistics.Total != 6 {
		t.Errorf("statistics not decoded: %+v", s.Statistics)
	}
}

func TestDecodeDefaults(t *testing.T) {
	s, err := Decode(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.GitHubTrending == nil {
		t.Error("github_trending should default to an empty map")
	}
	if s.HackerNews == nil {
		t.Error("hackernews should default to an empty slice")
	}
	if s.RSSFeeds == nil {
		t.Error("rss_feeds should default to an empty slice")
	}
	if s.Statistics != nil {
		t.Error("statistics should stay nil when absent")
	}
	if len(s.Repos("python")) != 0 {
		t.Error("absent language should yield no repos")
	}
}

func TestDecodeNullCollections(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"github_trending": null, "hackernews": null, "rss_feeds": null}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.GitHubTrending == nil || s.HackerNews == nil || s.RSSFeeds == nil {
		t.Error("null collections should default to empty values")
	}
}

func TestDecodeMalformed(t *testing.T) {
	inputs := []string{``, `{`, `[]`, `{"hackernews": "nope"}`, `<html>`, `null`, ` null `, `{} {}`, `{}garbage`}
	for _, in := range inputs {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("Decode(%q): expected error", in)
		}
	}
}

func TestDecodeTrailingWhitespace(t *testing.T) {
	if _, err := Decode(strings.NewReader("{}\n\n")); err != nil {
		t.Errorf("trailing newlines should be accepted: %v", err)
	}
}

func TestSources(t *testing.T) {
	s := decodeSample(t)
	got := s.Sources()
	want := []string{"all", "Go Blog", "InfoQ"}
	if len(got) != len(want) {
		t.Fatalf("Sources() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sources()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSourcesAllFirstEvenWhenPresent(t *testing.T) {
	s := &Snapshot{RSSFeeds: []Article{{Source: "B"}, {Source: "all"}, {Source: "A"}}}
	got := s.Sources()
	want := []string{"all", "B", "A"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestArticles(t *testing.T) {
	s := decodeSample(t)

	tests := []struct {
		filter string
		titles []string
	}{
		{"all", []string{"A", "B", "C", "D"}},
		{"Go Blog", []string{"A", "C"}},
		{"InfoQ", []string{"B"}},
		{"TechBlog", nil},
		{"go blog", nil},
		{"", []string{"D"}},
	}
	for _, tt := range tests {
		got := s.Articles(tt.filter)
		if len(got) != len(tt.titles) {
			t.Errorf("Articles(%q) = %d items, want %d", tt.filter, len(got), len(tt.titles))
			continue
		}
		for i, a := range got {
			if a.Title != tt.titles[i] {
				t.Errorf("Articles(%q)[%d] = %q, want %q", tt.filter, i, a.Title, tt.titles[i])
			}
			if tt.filter != AllSources && a.Source != tt.filter {
				t.Errorf("Articles(%q) returned source %q", tt.filter, a.Source)
			}
		}
	}
}

func TestLanguages(t *testing.T) {
	s := decodeSample(t)
	got := s.Languages()
	if strings.Join(got, ",") != "go,python" {
		t.Errorf("Languages() = %v, want [go python]", got)
	}
}

func TestUpdated(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"2025-01-15T08:30:00.123456", true, time.Date(2025, 1, 15, 8, 30, 0, 123456000, time.UTC)},
		{"2025-01-15T08:30:00Z", true, time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"2025-01-15T08:30:00", true, time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"yesterday", false, time.Time{}},
	}
	for _, tt := range tests {
		s := &Snapshot{UpdatedAt: tt.in}
		got, ok := s.Updated()
		if ok != tt.ok {
			t.Errorf("Updated(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("Updated(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	s := decodeSample(t)
	if c := s.Count(); c.RSSArticles != 4 || c.GitHubRepos != 1 {
		t.Errorf("Count() with statistics = %+v", c)
	}

	s.Statistics = nil
	c := s.Count()
	if c.GitHubRepos != 1 || c.HackerNewsStories != 1 || c.RSSArticles != 4 {
		t.Errorf("Count() derived = %+v", c)
	}
}

func TestNilSnapshot(t *testing.T) {
	var s *Snapshot
	if len(s.Repos("python")) != 0 || len(s.Stories()) != 0 || len(s.Articles("all")) != 0 {
		t.Error("nil snapshot should project to empty sequences")
	}
	if got := s.Sources(); len(got) != 1 || got[0] != AllSources {
		t.Errorf("nil Sources() = %v", got)
	}
}
