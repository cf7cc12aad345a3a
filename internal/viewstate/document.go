package viewstate

// Region and group IDs shared by every shell that hosts a Document.
const (
	RegionGitHubList     = "github-list"
	RegionHackerNewsList = "hackernews-list"
	RegionRSSList        = "rss-list"
	RegionUpdateTime     = "update-time"
	RegionStatGitHub     = "stat-github"
	RegionStatHackerNews = "stat-hn"
	RegionStatRSS        = "stat-rss"
	RegionSourceButtons  = "rss-sources"

	GroupNav           = "nav"
	GroupSections      = "content"
	GroupLanguageTabs  = "language-tabs"
	GroupSourceFilters = "rss-sources"
)

// Region is one output container whose markup is replaced wholesale.
type Region struct {
	ID    string
	HTML  string
	dirty bool
}

// Set replaces the region's markup and marks it for the next Flush.
func (r *Region) Set(html string) {
	r.HTML = html
	r.dirty = true
}

// Control is one selectable element in a ControlGroup.
type Control struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ControlGroup is a set of sibling controls with exactly one active key.
// The active key need not match any control.
type ControlGroup struct {
	ID       string
	Controls []Control
	Active   string
	dirty    bool
}

// Activate makes key the active member, deactivating the previous one,
// and returns the previously active key.
func (g *ControlGroup) Activate(key string) string {
	prev := g.Active
	g.Active = key
	g.dirty = true
	return prev
}

// IsActive reports whether key is the active member.
func (g *ControlGroup) IsActive(key string) bool { return g.Active == key }

// Has reports whether a control with key exists in the group.
func (g *ControlGroup) Has(key string) bool {
	for _, c := range g.Controls {
		if c.Key == key {
			return true
		}
	}
	return false
}

// SetControls replaces the group's members, keeping the active key.
func (g *ControlGroup) SetControls(controls []Control) {
	g.Controls = controls
	g.dirty = true
}

// Document is the set of named regions and control groups of one viewer.
// References are resolved once in NewDocument and held for the session.
type Document struct {
	GitHubList     *Region
	HackerNewsList *Region
	RSSList        *Region
	UpdateTime     *Region
	StatGitHub     *Region
	StatHackerNews *Region
	StatRSS        *Region
	SourceButtons  *Region

	Nav           *ControlGroup
	Sections      *ControlGroup
	LanguageTabs  *ControlGroup
	SourceFilters *ControlGroup
}

// NewDocument builds a Document with the given language tabs. Navigation
// and section groups always hold the three known sections.
func NewDocument(languages []Control) *Document {
	sections := make([]Control, len(Sections))
	for i, s := range Sections {
		sections[i] = Control{Key: string(s), Label: SectionLabel(s)}
	}
	return &Document{
		GitHubList:     &Region{ID: RegionGitHubList},
		HackerNewsList: &Region{ID: RegionHackerNewsList},
		RSSList:        &Region{ID: RegionRSSList},
		UpdateTime:     &Region{ID: RegionUpdateTime},
		StatGitHub:     &Region{ID: RegionStatGitHub},
		StatHackerNews: &Region{ID: RegionStatHackerNews},
		StatRSS:        &Region{ID: RegionStatRSS},
		SourceButtons:  &Region{ID: RegionSourceButtons},

		Nav:           &ControlGroup{ID: GroupNav, Controls: sections},
		Sections:      &ControlGroup{ID: GroupSections, Controls: sections},
		LanguageTabs:  &ControlGroup{ID: GroupLanguageTabs, Controls: languages},
		SourceFilters: &ControlGroup{ID: GroupSourceFilters},
	}
}

// SectionLabel is the navigation label of a section.
func SectionLabel(s Section) string {
	switch s {
	case SectionGitHub:
		return "GitHub Trending"
	case SectionHackerNews:
		return "Hacker News"
	case SectionRSS:
		return "Tech Blogs"
	default:
		return string(s)
	}
}

// ListRegion returns the list region a section renders into, or nil for an
// unknown section.
func (d *Document) ListRegion(s Section) *Region {
	switch s {
	case SectionGitHub:
		return d.GitHubList
	case SectionHackerNews:
		return d.HackerNewsList
	case SectionRSS:
		return d.RSSList
	default:
		return nil
	}
}

// ListRegions returns the three list regions in navigation order.
func (d *Document) ListRegions() []*Region {
	return []*Region{d.GitHubList, d.HackerNewsList, d.RSSList}
}

func (d *Document) regions() []*Region {
	return []*Region{
		d.GitHubList, d.HackerNewsList, d.RSSList,
		d.UpdateTime, d.StatGitHub, d.StatHackerNews, d.StatRSS,
		d.SourceButtons,
	}
}

func (d *Document) groups() []*ControlGroup {
	return []*ControlGroup{d.Nav, d.Sections, d.LanguageTabs, d.SourceFilters}
}

// RegionPatch replaces the markup of one region.
type RegionPatch struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

// GroupPatch sets the active member of one control group.
type GroupPatch struct {
	ID     string `json:"id"`
	Active string `json:"active"`
}

// Patch is the set of changes since the previous Flush. Region patches
// apply before group patches.
type Patch struct {
	Regions []RegionPatch `json:"regions"`
	Groups  []GroupPatch  `json:"groups"`
}

// Empty reports whether the patch carries no changes.
func (p Patch) Empty() bool { return len(p.Regions) == 0 && len(p.Groups) == 0 }

// Flush returns every region and group changed since the last Flush and
// clears their dirty flags.
func (d *Document) Flush() Patch {
	p := Patch{Regions: []RegionPatch{}, Groups: []GroupPatch{}}
	for _, r := range d.regions() {
		if r.dirty {
			p.Regions = append(p.Regions, RegionPatch{ID: r.ID, HTML: r.HTML})
			r.dirty = false
		}
	}
	for _, g := range d.groups() {
		if g.dirty {
			p.Groups = append(p.Groups, GroupPatch{ID: g.ID, Active: g.Active})
			g.dirty = false
		}
	}
	return p
}

// Snapshot returns every region and group regardless of dirty state and
// clears the dirty flags. It is what a freshly attached client receives.
func (d *Document) Snapshot() Patch {
	p := Patch{Regions: []RegionPatch{}, Groups: []GroupPatch{}}
	for _, r := range d.regions() {
		p.Regions = append(p.Regions, RegionPatch{ID: r.ID, HTML: r.HTML})
		r.dirty = false
	}
	for _, g := range d.groups() {
		p.Groups = append(p.Groups, GroupPatch{ID: g.ID, Active: g.Active})
		g.dirty = false
	}
	return p
}
