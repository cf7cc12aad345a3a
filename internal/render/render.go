// Package render projects slices of a snapshot into HTML fragments. Every
// function is pure: the same snapshot, state and labels give the same markup.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ziadkadry99/trendview/internal/sanitize"
	"github.com/ziadkadry99/trendview/internal/snapshot"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// Placeholder is the single-message fragment used for loading, failure and
// empty lists.
func Placeholder(text string) string {
	return `<div class="loading">` + sanitize.Escape(text) + `</div>`
}

// Section renders the list for the given section. Unknown sections render
// the empty placeholder.
func Section(snap *snapshot.Snapshot, st viewstate.State, labels Labels) string {
	switch st.Section {
	case viewstate.SectionGitHub:
		return GitHub(snap, st, labels)
	case viewstate.SectionHackerNews:
		return HackerNews(snap, st, labels)
	case viewstate.SectionRSS:
		return RSS(snap, st, labels)
	default:
		return Placeholder(labels.NoData)
	}
}

// GitHub renders one card per trending repository of st.Language.
func GitHub(snap *snapshot.Snapshot, st viewstate.State, labels Labels) string {
	repos := snap.Repos(st.Language)
	if len(repos) == 0 {
		return Placeholder(labels.NoData)
	}

	var b strings.Builder
	for _, repo := range repos {
		description := repo.Description
		if description == "" {
			description = labels.NoDescription
		}
		b.WriteString(`<div class="card">`)
		writeTitle(&b, repo.URL, repo.Name)
		fmt.Fprintf(&b, `<p class="card-description">%s</p>`, sanitize.Escape(description))
		b.WriteString(`<div class="card-meta">`)
		fmt.Fprintf(&b, `<span class="stars">⭐ %s</span>`, sanitize.Escape(repo.Stars.String()))
		fmt.Fprintf(&b, `<span class="stars-today">📈 %s today</span>`, sanitize.Escape(repo.StarsToday.String()))
		if repo.Forks != "0" {
			fmt.Fprintf(&b, `<span class="forks">🔀 %s</span>`, sanitize.Escape(repo.Forks.String()))
		}
		fmt.Fprintf(&b, `<span class="language">💻 %s</span>`, sanitize.Escape(repo.Language))
		b.WriteString(`</div></div>` + "\n")
	}
	return b.String()
}

// HackerNews renders one card per story, unfiltered.
func HackerNews(snap *snapshot.Snapshot, _ viewstate.State, labels Labels) string {
	stories := snap.Stories()
	if len(stories) == 0 {
		return Placeholder(labels.NoData)
	}

	var b strings.Builder
	for _, story := range stories {
		b.WriteString(`<div class="card">`)
		writeTitle(&b, story.URL, story.Title)
		b.WriteString(`<div class="card-meta">`)
		fmt.Fprintf(&b, `<span class="score">👍 %s points</span>`, sanitize.Escape(story.Score.String()))
		fmt.Fprintf(&b, `<span class="comments">💬 <a href="%s" target="_blank" rel="noopener noreferrer">%s comments</a></span>`,
			sanitize.URL(story.CommentsURL), sanitize.Escape(story.Comments.String()))
		fmt.Fprintf(&b, `<span class="author">👤 %s</span>`, sanitize.Escape(story.Author))
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<p class="card-time">📅 %s</p>`, sanitize.Escape(story.Time))
		b.WriteString(`</div>` + "\n")
	}
	return b.String()
}

// unknownAuthor is the aggregator's marker for a missing author.
const unknownAuthor = "Unknown"

// RSS renders one card per article matching st.Source.
func RSS(snap *snapshot.Snapshot, st viewstate.State, labels Labels) string {
	articles := snap.Articles(st.Source)
	if len(articles) == 0 {
		return Placeholder(labels.NoData)
	}

	var b strings.Builder
	for _, article := range articles {
		b.WriteString(`<div class="card">`)
		fmt.Fprintf(&b, `<span class="card-source">%s</span>`, sanitize.Escape(article.Source))
		writeTitle(&b, article.URL, article.Title)
		if article.Summary != "" {
			fmt.Fprintf(&b, `<p class="card-description">%s</p>`, sanitize.Escape(article.Summary))
		}
		b.WriteString(`<div class="card-meta">`)
		if article.Author != unknownAuthor {
			fmt.Fprintf(&b, `<span class="author">👤 %s</span>`, sanitize.Escape(article.Author))
		}
		fmt.Fprintf(&b, `<span class="published">📅 %s</span>`, sanitize.Escape(article.Published))
		b.WriteString(`</div></div>` + "\n")
	}
	return b.String()
}

func writeTitle(b *strings.Builder, url, title string) {
	fmt.Fprintf(b, `<h3 class="card-title"><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></h3>`,
		sanitize.URL(url), sanitize.Escape(title))
}

// SourceButtons renders one filter control per source. The "all" source is
// labelled labels.AllSources.
func SourceButtons(sources []string, active string, labels Labels) string {
	var b strings.Builder
	for _, source := range sources {
		label := source
		if source == snapshot.AllSources {
			label = labels.AllSources
		}
		class := "source-btn"
		if source == active {
			class += " active"
		}
		fmt.Fprintf(&b, `<button class="%s" data-key="%s">%s</button>`+"\n",
			class, sanitize.Escape(source), sanitize.Escape(label))
	}
	return b.String()
}

// TimestampLayout is how the last-updated time is shown.
const TimestampLayout = "2006/01/02 15:04"

// Timestamp renders the last-updated display, or "" when the snapshot has
// no usable timestamp.
func Timestamp(snap *snapshot.Snapshot, labels Labels) string {
	t, ok := snap.Updated()
	if !ok {
		return ""
	}
	return FormatTimestamp(t, labels)
}

// FormatTimestamp formats t with the updated prefix.
func FormatTimestamp(t time.Time, labels Labels) string {
	return sanitize.Escape(labels.UpdatedPrefix + t.Format(TimestampLayout))
}

// Stat renders one numeric statistic.
func Stat(n int) string {
	return fmt.Sprintf("%d", n)
}
