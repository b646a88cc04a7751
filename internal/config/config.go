package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Khanr7433/portfolio/internal/featured"
	"github.com/Khanr7433/portfolio/internal/sections"
)

// Config is everything the site reads from the environment. Values in a
// local .env file are loaded by godotenv before Load runs.
type Config struct {
	Port     string `env:"PORT"      envDefault:"8080"`
	GinMode  string `env:"GIN_MODE"  envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`
	ImagesDir string `env:"IMAGES_DIR" envDefault:"./images"`

	FeaturedCount int `env:"PORTFOLIO_FEATURED_COUNT" envDefault:"5"`

	Relay   Relay
	Tracker Tracker
}

// Relay holds the email relay credentials. They are optional at startup;
// a missing value fails the contact form submission, not the server.
type Relay struct {
	Endpoint   string        `env:"EMAILJS_ENDPOINT"    envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID  string        `env:"EMAILJS_SERVICE_ID"`
	TemplateID string        `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `env:"EMAILJS_PUBLIC_KEY"`
	ToEmail    string        `env:"EMAILJS_TO_EMAIL"`
	Timeout    time.Duration `env:"EMAILJS_TIMEOUT"     envDefault:"10s"`
}

// Tracker tunes the active-section heuristics sent to the client.
type Tracker struct {
	ProbeOffset  float64       `env:"NAV_PROBE_OFFSET"   envDefault:"150"`
	MarginTop    float64       `env:"NAV_MARGIN_TOP"     envDefault:"0.20"`
	MarginBottom float64       `env:"NAV_MARGIN_BOTTOM"  envDefault:"0.40"`
	AttachDelay  time.Duration `env:"NAV_ATTACH_DELAY"   envDefault:"100ms"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses environ instead of the process environment when non-nil.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is empty"))
	}
	if c.FeaturedCount <= 0 {
		errs = append(errs, fmt.Errorf("PORTFOLIO_FEATURED_COUNT must be positive, got %d", c.FeaturedCount))
	}
	if c.Tracker.MarginTop < 0 || c.Tracker.MarginBottom < 0 || c.Tracker.MarginTop+c.Tracker.MarginBottom >= 1 {
		errs = append(errs, fmt.Errorf("nav margins %.2f/%.2f leave no trigger zone", c.Tracker.MarginTop, c.Tracker.MarginBottom))
	}
	return errors.Join(errs...)
}

// Sections converts the tracker settings.
func (t Tracker) Sections() sections.Settings {
	return sections.Settings{
		ProbeOffset: t.ProbeOffset,
		Margins:     sections.Margins{Top: t.MarginTop, Bottom: t.MarginBottom},
		AttachDelay: t.AttachDelay,
	}
}

// Default returns the configuration with every default applied.
func Default() Config {
	d := sections.DefaultSettings()
	return Config{
		Port:          "8080",
		GinMode:       "debug",
		LogLevel:      "info",
		StaticDir:     "./static",
		ImagesDir:     "./images",
		FeaturedCount: featured.DefaultCount,
		Relay: Relay{
			Endpoint: "https://api.emailjs.com/api/v1.0/email/send",
			Timeout:  10 * time.Second,
		},
		Tracker: Tracker{
			ProbeOffset:  d.ProbeOffset,
			MarginTop:    d.Margins.Top,
			MarginBottom: d.Margins.Bottom,
			AttachDelay:  d.AttachDelay,
		},
	}
}
