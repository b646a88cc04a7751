package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Khanr7433/portfolio/internal/catalog"
	"github.com/Khanr7433/portfolio/internal/contact"
	"github.com/Khanr7433/portfolio/internal/content"
	"github.com/Khanr7433/portfolio/internal/featured"
	"github.com/Khanr7433/portfolio/internal/nav"
	"github.com/Khanr7433/portfolio/internal/projects"
	"github.com/Khanr7433/portfolio/internal/sections"
)

// card is a project prepared for the card templates.
type card struct {
	catalog.Project
	Major       bool
	Started     string
	Period      string
	Description template.HTML
}

func (s *Server) cards(list []catalog.Project) []card {
	out := make([]card, 0, len(list))
	for _, p := range list {
		out = append(out, card{
			Project:     p,
			Major:       s.deps.Catalog.IsMajor(p.ID),
			Started:     p.Duration.Start.Display(),
			Period:      p.Duration.Period(),
			Description: content.Markdown(p.Description),
		})
	}
	return out
}

func (s *Server) pageNav(page nav.Page) []nav.Item {
	active := ""
	if layout, ok := page.Layout(); ok {
		active = sections.InitialActive(layout)
	}
	return nav.Build(page, active)
}

func (s *Server) home(c *gin.Context) {
	cat := s.deps.Catalog
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":     s.deps.Site,
		"nav":      s.pageNav(nav.PageHome),
		"about":    content.Markdown(s.deps.Copy["about"]),
		"hero":     s.deps.Copy["hero"],
		"featured": s.cards(featured.Initial(cat, s.deps.Config.FeaturedCount)),
		"total":    cat.Len(),
		"form":     contact.Form{},
		"email":    s.deps.Site.Profile.Contact,
	})
}

// featuredProjects replaces the deterministic first paint with a shuffle once
// the page is interactive.
func (s *Server) featuredProjects(c *gin.Context) {
	cat := s.deps.Catalog
	c.HTML(http.StatusOK, "featured-grid.html", gin.H{
		"featured": s.cards(s.deps.Sampler.Sample(cat, s.deps.Config.FeaturedCount)),
		"total":    cat.Len(),
	})
}

func (s *Server) listing(filter string) gin.H {
	cat := s.deps.Catalog
	list := projects.FilterAndSort(cat, filter)
	return gin.H{
		"filter":   filter,
		"filters":  projects.Filters(cat),
		"projects": s.cards(list),
		"summary":  projects.Summary(cat, filter, len(list)),
		"major":    len(cat.Major()),
		"minor":    len(cat.Minor()),
	}
}

func (s *Server) allProjects(c *gin.Context) {
	data := s.listing(c.DefaultQuery("filter", projects.FilterAll))
	data["site"] = s.deps.Site
	data["nav"] = s.pageNav(nav.PageAllProjects)
	c.HTML(http.StatusOK, "all-projects.html", data)
}

func (s *Server) projectList(c *gin.Context) {
	c.HTML(http.StatusOK, "project-list.html", s.listing(c.DefaultQuery("filter", projects.FilterAll)))
}

func (s *Server) projectsJSON(c *gin.Context) {
	filter := c.DefaultQuery("filter", projects.FilterAll)
	list := projects.FilterAndSort(s.deps.Catalog, filter)
	c.JSON(http.StatusOK, gin.H{
		"filter":   filter,
		"projects": list,
		"summary":  projects.Summary(s.deps.Catalog, filter, len(list)),
	})
}

func (s *Server) sectionsConfig(c *gin.Context) {
	st := s.deps.Config.Tracker.Sections()
	path := c.DefaultQuery("page", nav.HomePath)
	layout, ok := nav.PageFromPath(path).Layout()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no sections on page " + path})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"anchors":       sections.Anchors,
		"initialActive": sections.InitialActive(layout),
		"tracking":      layout == sections.LayoutHome,
		"probeOffset":   st.ProbeOffset,
		"rootMargin":    st.Margins.RootMargin(),
		"attachDelayMs": st.AttachDelay.Milliseconds(),
	})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"form":  contact.Form{},
		"email": s.deps.Site.Profile.Contact,
	})
}

func (s *Server) submitContact(c *gin.Context) {
	var form contact.Form
	var res contact.Result
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
		res = contact.Invalid(form)
	} else {
		res = contact.Submit(c.Request.Context(), s.deps.Contact, form, s.deps.Logger)
	}
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"form":  res.Form,
		"toast": res.Toast,
		"email": s.deps.Site.Profile.Contact,
	})
}
