// Package server renders the portfolio pages with gin.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Khanr7433/portfolio/internal/catalog"
	"github.com/Khanr7433/portfolio/internal/config"
	"github.com/Khanr7433/portfolio/internal/contact"
	"github.com/Khanr7433/portfolio/internal/content"
	"github.com/Khanr7433/portfolio/internal/featured"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps are the collaborators the handlers read from.
type Deps struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Site    *content.Site
	Sampler *featured.Sampler
	Contact contact.Sender
	Logger  *zap.Logger
	// Copy holds the long-form page text keyed by section.
	Copy map[string]string
}

// Server owns the gin engine.
type Server struct {
	deps   Deps
	engine *gin.Engine
	salt   string
}

// New wires routes and templates.
func New(d Deps) (*Server, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Sampler == nil {
		d.Sampler = featured.New(nil)
	}
	if d.Site == nil {
		site, err := content.Load()
		if err != nil {
			return nil, err
		}
		d.Site = site
	}
	if d.Contact == nil {
		return nil, fmt.Errorf("server: contact sender is required")
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	s := &Server{deps: d, salt: salt}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(requestID(), s.requestLogger(), s.recovery())

	r.Static("/images", d.Config.ImagesDir)
	r.Static("/static", d.Config.StaticDir)

	s.routes(r)
	s.engine = r
	return s, nil
}

// Handler exposes the engine for http.Server and tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/", s.home)
	r.GET("/projects/featured", s.featuredProjects)
	r.GET("/all-projects", s.allProjects)
	r.GET("/all-projects/list", s.projectList)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	api := r.Group("/api")
	api.GET("/sections", s.sectionsConfig)
	api.GET("/projects", s.projectsJSON)
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown": content.Markdown,
		"join":     strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
