// Package controller applies selection events to a session's selector state
// and re-renders the affected region of its Document.
package controller

import (
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/render"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

// Controller owns one session's selector state and Document. It is not safe
// for concurrent use; each session drives its Controller from one goroutine.
type Controller struct {
	store  *loader.Store
	labels render.Labels
	state  viewstate.State
	doc    *viewstate.Document

	// setupDone is set once derived setup has run for a loaded store.
	setupDone bool
	// failed is set once the failure message has been shown.
	failed bool
}

// Options configure a new Controller.
type Options struct {
	Labels    render.Labels
	Languages []string
	Initial   viewstate.State
}

// New returns a Controller reading from store. Zero-valued option fields
// fall back to the defaults.
func New(store *loader.Store, opts Options) *Controller {
	tabs := make([]viewstate.Control, len(opts.Languages))
	for i, lang := range opts.Languages {
		tabs[i] = viewstate.Control{Key: lang, Label: LanguageLabel(lang)}
	}

	st := viewstate.Default()
	if opts.Initial.Section != "" {
		st.Section = opts.Initial.Section
	}
	if opts.Initial.Language != "" {
		st.Language = opts.Initial.Language
	}
	if opts.Initial.Source != "" {
		st.Source = opts.Initial.Source
	}

	c := &Controller{
		store:  store,
		labels: opts.Labels.WithDefaults(),
		state:  st,
		doc:    viewstate.NewDocument(tabs),
	}
	c.doc.Nav.Activate(string(st.Section))
	c.doc.Sections.Activate(string(st.Section))
	c.doc.LanguageTabs.Activate(st.Language)
	c.doc.SourceFilters.Activate(st.Source)
	return c
}

// State returns the current selector state.
func (c *Controller) State() viewstate.State { return c.state }

// Document returns the session's Document.
func (c *Controller) Document() *viewstate.Document { return c.doc }

// Init prepares the Document for the store's current status: loading
// placeholders while loading, failure messages after a failed load, or
// derived setup plus the active section after a successful one.
func (c *Controller) Init() {
	switch c.store.Status() {
	case loader.StatusLoading:
		for _, r := range c.doc.ListRegions() {
			r.Set(render.Placeholder(c.labels.Loading))
		}
	case loader.StatusFailed:
		c.showFailure()
	case loader.StatusLoaded:
		c.setup()
		c.renderSection(c.state.Section)
	}
}

// Sync brings a session that was initialized while loading up to date with
// the store. It reports whether anything changed.
func (c *Controller) Sync() bool {
	switch c.store.Status() {
	case loader.StatusLoaded:
		if c.setupDone {
			return false
		}
		c.setup()
		c.renderSection(c.state.Section)
		return true
	case loader.StatusFailed:
		if c.failed {
			return false
		}
		c.showFailure()
		return true
	}
	return false
}

func (c *Controller) showFailure() {
	c.failed = true
	for _, r := range c.doc.ListRegions() {
		r.Set(render.Placeholder(c.labels.LoadFailed))
	}
}

// setup runs once per session after a successful load: statistics,
// timestamp and the source filter controls.
func (c *Controller) setup() {
	c.setupDone = true
	snap := c.store.Snapshot()

	if stats := snap.Statistics; stats != nil {
		c.doc.StatGitHub.Set(render.Stat(stats.GitHubRepos))
		c.doc.StatHackerNews.Set(render.Stat(stats.HackerNewsStories))
		c.doc.StatRSS.Set(render.Stat(stats.RSSArticles))
	}
	if ts := render.Timestamp(snap, c.labels); ts != "" {
		c.doc.UpdateTime.Set(ts)
	}

	sources := c.store.Sources()
	controls := make([]viewstate.Control, len(sources))
	for i, s := range sources {
		label := s
		if s == viewstate.DefaultSource {
			label = c.labels.AllSources
		}
		controls[i] = viewstate.Control{Key: s, Label: label}
	}
	c.doc.SourceFilters.SetControls(controls)
	c.doc.SourceButtons.Set(render.SourceButtons(sources, c.doc.SourceFilters.Active, c.labels))
}

// SetSection switches the visible section to the control keyed name and
// renders it. An unknown name leaves the previous list in place showing the
// empty placeholder.
func (c *Controller) SetSection(name string) {
	section := viewstate.Section(name)
	c.state = c.state.WithSection(section)
	c.doc.Nav.Activate(name)
	prev := viewstate.Section(c.doc.Sections.Activate(name))
	if !section.Known() {
		c.renderInto(c.doc.ListRegion(prev), section)
		return
	}
	c.renderSection(section)
}

// SetLanguage switches the active language tab to code and re-renders the
// GitHub list only.
func (c *Controller) SetLanguage(code string) {
	c.state = c.state.WithLanguage(code)
	c.doc.LanguageTabs.Activate(code)
	c.renderSection(viewstate.SectionGitHub)
}

// SetSourceFilter switches the active source filter to name and re-renders
// the RSS list only.
func (c *Controller) SetSourceFilter(name string) {
	c.state = c.state.WithSource(name)
	c.doc.SourceFilters.Activate(name)
	c.renderSection(viewstate.SectionRSS)
}

// renderSection re-renders one section's list region. Nothing renders
// until the store is loaded, and unknown sections have no region.
func (c *Controller) renderSection(section viewstate.Section) {
	c.renderInto(c.doc.ListRegion(section), section)
}

// renderInto renders section into region. Unknown sections go through the
// renderers' empty fallback.
func (c *Controller) renderInto(region *viewstate.Region, section viewstate.Section) {
	if region == nil || c.store.Status() != loader.StatusLoaded {
		return
	}
	region.Set(render.Section(c.store.Snapshot(), c.state.WithSection(section), c.labels))
}

// languageLabels are display names for the usual trending languages.
var languageLabels = map[string]string{
	"python":     "Python",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"go":         "Go",
	"rust":       "Rust",
	"java":       "Java",
	"c++":        "C++",
	"c#":         "C#",
	"ruby":       "Ruby",
	"php":        "PHP",
	"kotlin":     "Kotlin",
	"swift":      "Swift",
}

// LanguageLabel returns the tab label for a language key.
func LanguageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return code
}
