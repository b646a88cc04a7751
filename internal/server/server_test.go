package server

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khanr7433/portfolio/internal/catalog"
	"github.com/Khanr7433/portfolio/internal/config"
	"github.com/Khanr7433/portfolio/internal/contact"
	"github.com/Khanr7433/portfolio/internal/content"
	"github.com/Khanr7433/portfolio/internal/featured"
	"github.com/Khanr7433/portfolio/internal/sections"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSender struct {
	err  error
	sent []contact.Form
}

func (r *recordingSender) Send(_ context.Context, f contact.Form) error {
	r.sent = append(r.sent, f)
	return r.err
}

func newTestServer(t *testing.T, sender contact.Sender) http.Handler {
	t.Helper()
	srv, err := New(Deps{
		Config:  config.Default(),
		Catalog: catalog.Default(),
		Sampler: featured.New(rand.NewPCG(3, 4)),
		Contact: sender,
		Copy:    map[string]string{"about": "I build **web apps**.", "hero": "Hello there"},
	})
	require.NoError(t, err)
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func cardIDs(doc *goquery.Document) []string {
	var ids []string
	doc.Find("[data-project]").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-project", ""))
	})
	return ids
}

func TestHomeRendersEveryAnchor(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	rec, doc := get(t, h, "/")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	for _, a := range sections.Anchors {
		assert.Equal(t, 1, doc.Find("section#"+a.ID).Length(), a.ID)
	}

	active := doc.Find("nav .nav-link-active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, sections.Home, active.AttrOr("data-anchor", ""))
	assert.Equal(t, "#about", doc.Find(`nav a[data-anchor="about"]`).AttrOr("href", ""))
	assert.Equal(t, "smooth", doc.Find(`nav a[data-anchor="projects"]`).AttrOr("data-scroll", ""))

	assert.Contains(t, doc.Find("#about").Text(), "web apps")
	assert.Equal(t, 1, doc.Find("#about strong").Length())
}

func TestHomeFirstPaintIsDeterministic(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	_, first := get(t, h, "/")
	_, second := get(t, h, "/")

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, cardIDs(first))
	assert.Equal(t, cardIDs(first), cardIDs(second))
	assert.Equal(t, "/projects/featured", first.Find("#featured").AttrOr("hx-get", ""))
	assert.Equal(t, "load", first.Find("#featured").AttrOr("hx-trigger", ""))
}

func TestFeaturedFragmentShuffles(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	seen := map[string]bool{}
	for range 10 {
		_, doc := get(t, h, "/projects/featured")
		ids := cardIDs(doc)
		require.Len(t, ids, featured.DefaultCount)
		seen[strings.Join(ids, ",")] = true
		assert.Contains(t, doc.Find(".featured-count").Text(), "from 12 total projects")
	}
	assert.Greater(t, len(seen), 1)
}

func TestAllProjectsPage(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	_, doc := get(t, h, "/all-projects")

	ids := cardIDs(doc)
	require.Len(t, ids, 12)
	assert.Equal(t, []string{"1", "2", "5", "3", "4"}, ids[:5])
	assert.Equal(t, "Showing 12 of 12 projects", strings.TrimSpace(doc.Find(".project-summary").Text()))

	active := doc.Find("nav .nav-link-active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, sections.Projects, active.AttrOr("data-anchor", ""))
	assert.Equal(t, "page", active.AttrOr("aria-current", ""))
	assert.Equal(t, "/#about", doc.Find(`nav a[data-anchor="about"]`).AttrOr("href", ""))

	assert.Equal(t, "all", doc.Find(".filter-btn-active").AttrOr("data-filter", ""))
	assert.Equal(t, 4, doc.Find(".filter-btn").Length())
}

func TestProjectListFilters(t *testing.T) {
	h := newTestServer(t, &recordingSender{})

	_, doc := get(t, h, "/all-projects/list?filter=minor")
	assert.Len(t, cardIDs(doc), 7)
	assert.Equal(t, 7, doc.Find(".badge-minor").Length())
	assert.Contains(t, doc.Find(".project-summary").Text(), "(Minor Projects Only)")
	assert.Equal(t, "minor", doc.Find(".filter-btn-active").AttrOr("data-filter", ""))

	_, doc = get(t, h, "/all-projects/list?filter="+url.QueryEscape("Game Dev"))
	assert.Empty(t, cardIDs(doc))
	assert.Equal(t, `Showing 0 of 12 projects in "Game Dev" category`, strings.TrimSpace(doc.Find(".project-summary").Text()))
}

func TestProjectsJSON(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects?filter=major", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Filter   string            `json:"filter"`
		Projects []catalog.Project `json:"projects"`
		Summary  string            `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Projects, 5)
	assert.Equal(t, "2025-07", body.Projects[0].Duration.Start.String())
}

func TestSectionsConfig(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	for page, want := range map[string]struct {
		active   string
		tracking bool
	}{
		"/":             {sections.Home, true},
		"/all-projects": {sections.Projects, false},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sections?page="+url.QueryEscape(page), nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, want.active, body["initialActive"], page)
		assert.Equal(t, want.tracking, body["tracking"], page)
		assert.Equal(t, "-20% 0px -40% 0px", body["rootMargin"])
		assert.EqualValues(t, 150, body["probeOffset"])
		assert.Len(t, body["anchors"], len(sections.Anchors))
	}
}

func TestSectionsConfigRejectsPagesWithoutSections(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sections?page=/privacy", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// The browser tracker in static/js mirrors internal/sections and reads every
// setting /api/sections serves.
func TestSectionsScriptReadsServedSettings(t *testing.T) {
	cfg := config.Default()
	cfg.StaticDir = "../../static"
	srv, err := New(Deps{Config: cfg, Contact: &recordingSender{}})
	require.NoError(t, err)
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/js/sections.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	script := rec.Body.String()

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sections?page=/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for key := range body {
		assert.Contains(t, script, "cfg."+key, key)
	}

	assert.Contains(t, script, "section not rendered, skipping")
	assert.Contains(t, script, "section not rendered, not observing")
	assert.Contains(t, script, "IntersectionObserver")

	_, doc := get(t, h, "/")
	assert.Equal(t, 1, doc.Find(`script[src="/static/js/sections.js"]`).Length())
	assert.Equal(t, "/api/sections?page=/", doc.Find("body").AttrOr("data-sections", ""))
}

func TestHomeRendersWithoutTitles(t *testing.T) {
	srv, err := New(Deps{
		Config:  config.Default(),
		Site:    &content.Site{Profile: content.Profile{Name: "Ada"}},
		Contact: &recordingSender{},
	})
	require.NoError(t, err)
	_, doc := get(t, srv.Handler(), "/")
	assert.Equal(t, "Ada", doc.Find("h1").First().Text())
	assert.Empty(t, strings.TrimSpace(doc.Find(".hero-titles").Text()))
	assert.Equal(t, 1, doc.Find("footer").Length())
}

func postContact(t *testing.T, h http.Handler, form url.Values) *goquery.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func filled() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Let's build something."},
	}
}

func fieldValues(doc *goquery.Document) []string {
	return []string{
		doc.Find(`input[name="name"]`).AttrOr("value", "?"),
		doc.Find(`input[name="email"]`).AttrOr("value", "?"),
		doc.Find(`input[name="subject"]`).AttrOr("value", "?"),
		doc.Find(`textarea[name="message"]`).Text(),
	}
}

func TestContactSuccessClearsFields(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer relay.Close()

	client := contact.NewClient(contact.RelayConfig{
		Endpoint: relay.URL, ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk", ToEmail: "me@example.com",
	}, time.Second, nil)
	doc := postContact(t, newTestServer(t, client), filled())

	assert.Equal(t, "success", doc.Find(".toast").AttrOr("data-kind", ""))
	assert.Equal(t, []string{"", "", "", ""}, fieldValues(doc))
}

func TestContactMissingConfigKeepsFields(t *testing.T) {
	client := contact.NewClient(contact.RelayConfig{}, time.Second, nil)
	doc := postContact(t, newTestServer(t, client), filled())

	assert.Equal(t, "error", doc.Find(".toast").AttrOr("data-kind", ""))
	assert.Equal(t, []string{"Ada", "ada@example.com", "Hello", "Let's build something."}, fieldValues(doc))
}

func TestContactInvalidFormIsNotSent(t *testing.T) {
	sender := &recordingSender{}
	form := filled()
	form.Set("email", "not-an-email")
	doc := postContact(t, newTestServer(t, sender), form)

	assert.Empty(t, sender.sent)
	assert.Equal(t, "error", doc.Find(".toast").AttrOr("data-kind", ""))
	assert.Equal(t, "not-an-email", doc.Find(`input[name="email"]`).AttrOr("value", ""))
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, &recordingSender{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "ok", rec.Body.String())
}

func TestNewRequiresSender(t *testing.T) {
	_, err := New(Deps{Config: config.Default()})
	require.Error(t, err)
}
