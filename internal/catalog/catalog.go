package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is the catalog partition a project lives in.
type Tier int

const (
	TierMajor Tier = iota
	TierMinor
)

func (t Tier) String() string {
	if t == TierMajor {
		return "major"
	}
	return "minor"
}

// Duration is the time span a project was worked on. A nil End means ongoing.
type Duration struct {
	Start YearMonth  `json:"start"`
	End   *YearMonth `json:"end,omitempty"`
}

// Project is one portfolio entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Role         string   `json:"role"`
	Duration     Duration `json:"duration"`
	Highlights   []string `json:"highlights"`
	GitHub       string   `json:"github,omitempty"`
	LiveDemo     string   `json:"liveDemo,omitempty"`
	Category     string   `json:"category"`
}

var (
	ErrDuplicateID = errors.New("duplicate project id")
	ErrMissingID   = errors.New("project id is empty")
	ErrBadID       = errors.New("project id has surrounding whitespace")
	ErrBadDuration = errors.New("invalid project duration")
)

// Catalog holds the two project partitions. It is never mutated after New.
type Catalog struct {
	major []Project
	minor []Project
	tiers map[string]Tier
}

// New validates the partitions and builds the id lookup.
func New(major, minor []Project) (*Catalog, error) {
	c := &Catalog{
		major: append([]Project(nil), major...),
		minor: append([]Project(nil), minor...),
		tiers: make(map[string]Tier, len(major)+len(minor)),
	}
	for _, p := range c.major {
		if err := c.add(p, TierMajor); err != nil {
			return nil, err
		}
	}
	for _, p := range c.minor {
		if err := c.add(p, TierMinor); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(p Project, tier Tier) error {
	id := p.ID
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w (title %q)", ErrMissingID, p.Title)
	}
	if strings.TrimSpace(id) != id {
		return fmt.Errorf("%w: %q", ErrBadID, id)
	}
	if _, dup := c.tiers[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	if p.Duration.Start.IsZero() {
		return fmt.Errorf("%w: project %s has no start", ErrBadDuration, id)
	}
	if end := p.Duration.End; end != nil && end.Before(p.Duration.Start) {
		return fmt.Errorf("%w: project %s ends %s before it starts %s", ErrBadDuration, id, end, p.Duration.Start)
	}
	c.tiers[id] = tier
	return nil
}

// MustNew is New for compiled-in tables.
func MustNew(major, minor []Project) *Catalog {
	c, err := New(major, minor)
	if err != nil {
		panic(err)
	}
	return c
}

// Major returns a copy of the major partition.
func (c *Catalog) Major() []Project { return append([]Project(nil), c.major...) }

// Minor returns a copy of the minor partition.
func (c *Catalog) Minor() []Project { return append([]Project(nil), c.minor...) }

// All returns major then minor projects as a new slice.
func (c *Catalog) All() []Project {
	out := make([]Project, 0, len(c.major)+len(c.minor))
	out = append(out, c.major...)
	return append(out, c.minor...)
}

func (c *Catalog) Len() int { return len(c.major) + len(c.minor) }

// TierOf reports the partition holding id.
func (c *Catalog) TierOf(id string) (Tier, bool) {
	t, ok := c.tiers[id]
	return t, ok
}

// IsMajor reports whether id belongs to the major partition.
func (c *Catalog) IsMajor(id string) bool {
	t, ok := c.tiers[id]
	return ok && t == TierMajor
}

// Categories lists distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.All() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
