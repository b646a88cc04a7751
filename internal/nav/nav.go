package nav

import (
	"strings"

	"github.com/Khanr7433/portfolio/internal/sections"
)

// Page identifies which logical page a request renders.
type Page int

const (
	PageOther Page = iota
	PageHome
	PageAllProjects
)

const (
	HomePath        = "/"
	AllProjectsPath = "/all-projects"
)

// PageFromPath maps a request path to a Page.
func PageFromPath(p string) Page {
	p = strings.TrimSuffix(p, "/")
	switch p {
	case "":
		return PageHome
	case AllProjectsPath:
		return PageAllProjects
	}
	return PageOther
}

// Layout returns the section layout the page renders. Pages outside the
// portfolio render no anchors and report false.
func (p Page) Layout() (sections.Layout, bool) {
	switch p {
	case PageHome:
		return sections.LayoutHome, true
	case PageAllProjects:
		return sections.LayoutProjectsOnly, true
	}
	return 0, false
}

// ActionKind is what a nav click does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionScroll
	ActionNavigate
)

// Action is the outcome of a nav click. The caller performs it.
type Action struct {
	Kind   ActionKind
	Anchor string
	Path   string
	// Smooth is set on scroll actions; scrolling is animated, never a jump.
	Smooth bool
}

func ScrollTo(anchor string) Action {
	return Action{Kind: ActionScroll, Anchor: anchor, Smooth: true}
}

func NavigateTo(path string) Action {
	return Action{Kind: ActionNavigate, Path: path}
}

// ResolveClick decides what clicking the nav entry for anchor does on page.
// An id that is not a known anchor does nothing.
func ResolveClick(anchor string, page Page) Action {
	if _, ok := sections.Lookup(anchor); !ok {
		return Action{Kind: ActionNone}
	}
	if anchor == sections.Projects {
		switch page {
		case PageAllProjects:
			return Action{Kind: ActionNone}
		case PageHome:
			return ScrollTo(anchor)
		default:
			return NavigateTo(HomePath + "#" + sections.Projects)
		}
	}
	if page == PageHome {
		return ScrollTo(anchor)
	}
	return NavigateTo(HomePath + "#" + anchor)
}

// Href renders the action as a link target.
func (a Action) Href() string {
	switch a.Kind {
	case ActionScroll:
		return "#" + a.Anchor
	case ActionNavigate:
		return a.Path
	}
	return ""
}

// Item is a view model for the header templates.
type Item struct {
	Name   string
	Anchor string
	Href   string
	Smooth bool
	// Current marks a click that would not leave the current view.
	Current bool
	Active  bool
}

// Build renders the header navigation for page with active highlighted.
func Build(page Page, active string) []Item {
	items := make([]Item, 0, len(sections.Anchors))
	for _, a := range sections.Anchors {
		act := ResolveClick(a.ID, page)
		href := act.Href()
		if act.Kind == ActionNone {
			href = AllProjectsPath
		}
		items = append(items, Item{
			Name:    a.Name,
			Anchor:  a.ID,
			Href:    href,
			Smooth:  act.Smooth,
			Current: act.Kind == ActionNone,
			Active:  a.ID == active,
		})
	}
	return items
}
