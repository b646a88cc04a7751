// Package content holds the profile tables rendered around the project views.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var raw []byte

type Location struct {
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	Country    string `yaml:"country"`
	PostalCode string `yaml:"postal_code"`
}

func (l Location) String() string {
	return strings.Join([]string{l.City, l.State, l.Country}, ", ")
}

type ContactInfo struct {
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Website  string `yaml:"website"`
}

type Availability struct {
	Status            string   `yaml:"status"`
	PreferredWorkType []string `yaml:"preferred_work_type"`
}

type Profile struct {
	Name         string       `yaml:"name"`
	Initials     string       `yaml:"initials"`
	Titles       []string     `yaml:"titles"`
	Summary      string       `yaml:"summary"`
	Location     Location     `yaml:"location"`
	Contact      ContactInfo  `yaml:"contact"`
	Social       Social       `yaml:"social"`
	Interests    []string     `yaml:"interests"`
	Availability Availability `yaml:"availability"`
}

type SkillCategory struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

type Skills struct {
	Categories       []SkillCategory `yaml:"categories"`
	OperatingSystems []string        `yaml:"operating_systems"`
	SoftSkills       []string        `yaml:"soft_skills"`
	Languages        []string        `yaml:"languages"`
}

type ToolItem struct {
	Label  string   `yaml:"label"`
	Values []string `yaml:"values"`
}

type ToolGroup struct {
	Group string     `yaml:"group"`
	Items []ToolItem `yaml:"items"`
}

type Job struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Description string `yaml:"description"`
}

type School struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Highlights  []string `yaml:"highlights"`
}

// Site is every static table shown on the home page.
type Site struct {
	Profile    Profile     `yaml:"profile"`
	Skills     Skills      `yaml:"skills"`
	Tools      []ToolGroup `yaml:"tools"`
	Experience []Job       `yaml:"experience"`
	Education  []School    `yaml:"education"`
}

// TechnologyCount is the number of distinct skills across categories.
func (s *Site) TechnologyCount() int {
	seen := map[string]struct{}{}
	for _, c := range s.Skills.Categories {
		for _, sk := range c.Skills {
			seen[sk] = struct{}{}
		}
	}
	return len(seen)
}

// Load parses the embedded tables.
func Load() (*Site, error) {
	return Parse(raw)
}

// Parse decodes a content document.
func Parse(b []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if strings.TrimSpace(s.Profile.Name) == "" {
		return nil, fmt.Errorf("decode content: profile name is empty")
	}
	return &s, nil
}

var (
	md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))

	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Markdown renders s as sanitized HTML.
func Markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(strings.TrimSpace(policy.Sanitize(buf.String())))
}
