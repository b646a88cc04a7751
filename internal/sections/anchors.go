package sections

import (
	"fmt"
	"time"
)

// Anchor is a navigable section of the home page.
type Anchor struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

const (
	Home     = "home"
	Projects = "projects"
	Contact  = "contact-form"
)

// Anchors is ordered top to bottom as the sections appear on the page.
var Anchors = []Anchor{
	{Name: "Home", ID: Home},
	{Name: "About", ID: "about"},
	{Name: "Skills", ID: "skills"},
	{Name: "Tools", ID: "tools"},
	{Name: "Projects", ID: Projects},
	{Name: "Experience", ID: "experience"},
	{Name: "Education", ID: "education"},
	{Name: "Contact", ID: Contact},
}

// IDs returns the anchor ids in page order.
func IDs() []string {
	out := make([]string, len(Anchors))
	for i, a := range Anchors {
		out[i] = a.ID
	}
	return out
}

// Lookup finds an anchor by id.
func Lookup(id string) (Anchor, bool) {
	for _, a := range Anchors {
		if a.ID == id {
			return a, true
		}
	}
	return Anchor{}, false
}

// Layout says which sections a page renders.
type Layout int

const (
	// LayoutHome renders every anchor.
	LayoutHome Layout = iota
	// LayoutProjectsOnly renders the project listing alone.
	LayoutProjectsOnly
)

// InitialActive is the active anchor before any scroll or visibility signal.
func InitialActive(l Layout) string {
	if l == LayoutProjectsOnly {
		return Projects
	}
	return Home
}

// Margins narrow the viewport used for the visibility signal, as fractions
// of the viewport height taken off the top and bottom.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// RootMargin renders the margins in IntersectionObserver syntax.
func (m Margins) RootMargin() string {
	return fmt.Sprintf("-%g%% 0px -%g%% 0px", m.Top*100, m.Bottom*100)
}

// Settings tune the two tracking signals.
type Settings struct {
	// ProbeOffset approximates the fixed header height in pixels.
	ProbeOffset float64       `json:"probeOffset"`
	Margins     Margins       `json:"margins"`
	AttachDelay time.Duration `json:"attachDelay"`
}

func DefaultSettings() Settings {
	return Settings{
		ProbeOffset: 150,
		Margins:     Margins{Top: 0.20, Bottom: 0.40},
		AttachDelay: 100 * time.Millisecond,
	}
}
