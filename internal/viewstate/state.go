// Package viewstate holds the selector state that drives rendering and the
// named output regions and control groups a session renders into.
package viewstate

// Section identifies one of the three browsable sections.
type Section string

const (
	SectionGitHub     Section = "github"
	SectionHackerNews Section = "hackernews"
	SectionRSS        Section = "rss"
)

// Sections lists the known sections in navigation order.
var Sections = []Section{SectionGitHub, SectionHackerNews, SectionRSS}

// Known reports whether s is one of the three sections.
func (s Section) Known() bool {
	switch s {
	case SectionGitHub, SectionHackerNews, SectionRSS:
		return true
	}
	return false
}

// Defaults for a fresh session.
const (
	DefaultLanguage = "python"
	DefaultSource   = "all"
)

// State is the tuple of selectors. It is a value: each With* method returns
// the next state and leaves the receiver untouched.
type State struct {
	Section  Section `json:"section"`
	Language string  `json:"language"`
	Source   string  `json:"source"`
}

// Default returns the initial selector state.
func Default() State {
	return State{Section: SectionGitHub, Language: DefaultLanguage, Source: DefaultSource}
}

// WithSection returns s with the active section replaced.
func (s State) WithSection(section Section) State {
	s.Section = section
	return s
}

// WithLanguage returns s with the active language replaced.
func (s State) WithLanguage(language string) State {
	s.Language = language
	return s
}

// WithSource returns s with the active source filter replaced.
func (s State) WithSource(source string) State {
	s.Source = source
	return s
}
