// Package snapshot defines the aggregated trends document and the read-only
// projections the renderers take from it.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"
)

// AllSources is the source filter value that disables filtering.
const AllSources = "all"

// Decode parses a snapshot document. Absent collections default to empty
// values so callers never see nil maps or slices.
// The body must hold exactly one JSON object.
func Decode(r io.Reader) (*Snapshot, error) {
	dec := json.NewDecoder(r)
	var s *Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if s == nil {
		return nil, errNullSnapshot
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return nil, errTrailingData
	}
	s.applyDefaults()
	return s, nil
}

var (
	errNullSnapshot = errors.New("decoding snapshot: document is null")
	errTrailingData = errors.New("decoding snapshot: unexpected data after the document")
)

func (s *Snapshot) applyDefaults() {
	if s.GitHubTrending == nil {
		s.GitHubTrending = map[string][]Repo{}
	}
	if s.HackerNews == nil {
		s.HackerNews = []Story{}
	}
	if s.RSSFeeds == nil {
		s.RSSFeeds = []Article{}
	}
}

// Repos returns the trending repositories for a language, or an empty
// sequence when the language is absent.
func (s *Snapshot) Repos(language string) []Repo {
	if s == nil {
		return nil
	}
	return s.GitHubTrending[language]
}

// Stories returns every Hacker News story in snapshot order.
func (s *Snapshot) Stories() []Story {
	if s == nil {
		return nil
	}
	return s.HackerNews
}

// Articles returns the RSS entries whose source equals filter exactly, in
// snapshot order. AllSources returns the full sequence.
func (s *Snapshot) Articles(filter string) []Article {
	if s == nil {
		return nil
	}
	if filter == AllSources {
		return s.RSSFeeds
	}
	var out []Article
	for _, a := range s.RSSFeeds {
		if a.Source == filter {
			out = append(out, a)
		}
	}
	return out
}

// Sources returns AllSources followed by the distinct article sources in
// first-seen order. Empty source names are skipped.
func (s *Snapshot) Sources() []string {
	sources := []string{AllSources}
	if s == nil {
		return sources
	}
	seen := map[string]bool{AllSources: true}
	for _, a := range s.RSSFeeds {
		if a.Source == "" || seen[a.Source] {
			continue
		}
		seen[a.Source] = true
		sources = append(sources, a.Source)
	}
	return sources
}

// Languages returns the languages present in the snapshot, sorted.
func (s *Snapshot) Languages() []string {
	if s == nil {
		return nil
	}
	langs := make([]string, 0, len(s.GitHubTrending))
	for lang := range s.GitHubTrending {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// updatedLayouts covers RFC 3339 and the zone-less ISO form the aggregator
// writes.
var updatedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Updated parses updated_at. ok is false when it is missing or malformed.
func (s *Snapshot) Updated() (t time.Time, ok bool) {
	if s == nil || s.UpdatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range updatedLayouts {
		if parsed, err := time.Parse(layout, s.UpdatedAt); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Counts summarizes how many items each section holds. Upstream statistics
// win when present, matching what the viewer displays.
type Counts struct {
	GitHubRepos       int `json:"github_repos"`
	HackerNewsStories int `json:"hackernews_stories"`
	RSSArticles       int `json:"rss_articles"`
}

// Count returns the section counts, preferring upstream statistics.
func (s *Snapshot) Count() Counts {
	if s == nil {
		return Counts{}
	}
	if s.Statistics != nil {
		return Counts{
			GitHubRepos:       s.Statistics.GitHubRepos,
			HackerNewsStories: s.Statistics.HackerNewsStories,
			RSSArticles:       s.Statistics.RSSArticles,
		}
	}
	var c Counts
	for _, repos := range s.GitHubTrending {
		c.GitHubRepos += len(repos)
	}
	c.HackerNewsStories = len(s.HackerNews)
	c.RSSArticles = len(s.RSSFeeds)
	return c
}
