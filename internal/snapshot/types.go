package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a scalar that the aggregator emits either as a JSON string or a
// JSON number ("1,234" for stars, 42 for comments). It is kept as text.
type Text string

// UnmarshalJSON accepts strings, numbers and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(b))
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("text value %s: %w", data, err)
		}
		*t = Text(n.String())
		return nil
	}
}

// String returns the text value.
func (t Text) String() string { return string(t) }

// Repo is one GitHub trending repository summary.
type Repo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Stars       Text   `json:"stars"`
	StarsToday  Text   `json:"stars_today"`
	Forks       Text   `json:"forks"`
	Language    string `json:"language"`
}

// Story is one Hacker News story.
type Story struct {
	ID          Text   `json:"id,omitempty"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       Text   `json:"score"`
	CommentsURL string `json:"hn_url"`
	Comments    Text   `json:"comments"`
	Author      string `json:"author"`
	Time        string `json:"time"`
	Timestamp   Text   `json:"timestamp,omitempty"`
}

// Article is one RSS feed entry.
type Article struct {
	Source    string `json:"source"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Summary   string `json:"summary,omitempty"`
	Author    string `json:"author"`
	Published string `json:"published"`
}

// Statistics are the upstream counts per section.
type Statistics struct {
	GitHubRepos       int `json:"github_repos"`
	HackerNewsStories int `json:"hackernews_stories"`
	RSSArticles       int `json:"rss_articles"`
	Total             int `json:"total,omitempty"`
}

// Snapshot is the single fetched document for a session. It is never
// mutated after Decode returns.
type Snapshot struct {
	GitHubTrending map[string][]Repo `json:"github_trending"`
	HackerNews     []Story           `json:"hackernews"`
	RSSFeeds       []Article         `json:"rss_feeds"`
	UpdatedAt      string            `json:"updated_at,omitempty"`
	Date           string            `json:"date,omitempty"`
	Statistics     *Statistics       `json:"statistics,omitempty"`
}
