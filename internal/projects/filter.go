// Package projects selects and orders catalog entries for the listing views.
package projects

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Khanr7433/portfolio/internal/catalog"
)

const (
	FilterAll   = "all"
	FilterMajor = "major"
	FilterMinor = "minor"
)

// Option is one filter button on the all-projects page.
type Option struct {
	Value string
	Label string
}

// FilterAndSort returns the visible projects for filter, major tier first and
// newest start first within a tier. Equal start dates keep catalog order.
// Unknown filters yield an empty result.
func FilterAndSort(c *catalog.Catalog, filter string) []catalog.Project {
	var selected []catalog.Project
	switch filter {
	case FilterAll, "":
		selected = c.All()
	case FilterMajor:
		selected = c.Major()
	case FilterMinor:
		selected = c.Minor()
	default:
		for _, p := range c.All() {
			if p.Category == filter {
				selected = append(selected, p)
			}
		}
	}
	if selected == nil {
		return []catalog.Project{}
	}

	slices.SortStableFunc(selected, func(a, b catalog.Project) int {
		aMajor, bMajor := c.IsMajor(a.ID), c.IsMajor(b.ID)
		switch {
		case aMajor && !bMajor:
			return -1
		case !aMajor && bMajor:
			return 1
		case a.Duration.Start.After(b.Duration.Start):
			return -1
		case a.Duration.Start.Before(b.Duration.Start):
			return 1
		}
		return 0
	})
	return selected
}

// Filters lists the tier filters followed by each catalog category.
func Filters(c *catalog.Catalog) []Option {
	opts := []Option{
		{Value: FilterAll, Label: "All"},
		{Value: FilterMajor, Label: "Major Projects"},
		{Value: FilterMinor, Label: "Minor Projects"},
	}
	for _, cat := range c.Categories() {
		opts = append(opts, Option{Value: cat, Label: upperFirst(cat)})
	}
	return opts
}

// Summary renders the count line shown under the project grid.
func Summary(c *catalog.Catalog, filter string, shown int) string {
	p := message.NewPrinter(language.English)
	line := p.Sprintf("Showing %d of %d projects", shown, c.Len())
	switch filter {
	case FilterAll, "":
	case FilterMajor:
		line += " (Major Projects Only)"
	case FilterMinor:
		line += " (Minor Projects Only)"
	default:
		line += ` in "` + filter + `" category`
	}
	return line
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
