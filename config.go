package blog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/angelikatyborska/blog/views"
)

// Config is the top-level site configuration, corresponding to blog.yml.
type Config struct {
	Name        string `koanf:"name"`
	URL         string `koanf:"url"`
	Description string `koanf:"description"`
	Author      string `koanf:"author"`

	Addr       string `koanf:"addr"`
	ContentDir string `koanf:"content_dir"`
	StaticDir  string `koanf:"static_dir"`
	OutputDir  string `koanf:"output_dir"`

	HomeSlug    string `koanf:"home_slug"`
	BlogSlug    string `koanf:"blog_slug"`
	AccentColor string `koanf:"accent_color"`

	SessionSecret string        `koanf:"session_secret"`
	CookieSecure  bool          `koanf:"cookie_secure"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:        "Blog",
		URL:         "http://localhost:3000",
		Addr:        ":3000",
		ContentDir:  "content",
		StaticDir:   "public",
		OutputDir:   "out",
		HomeSlug:    "hi",
		BlogSlug:    "blog",
		AccentColor: "#d62f6d",
		CacheTTL:    5 * time.Minute,
	}
}

// LoadConfig reads configuration from the given YAML file if it exists,
// then overlays environment variable overrides (BLOG_*).
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// BLOG_SESSION_SECRET -> session_secret, etc.
	if err := k.Load(env.Provider("BLOG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BLOG_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.URL = strings.TrimSuffix(cfg.URL, "/")
	return cfg, nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.HomeSlug == "" {
		return fmt.Errorf("home_slug is required")
	}
	if !ValidAccent(c.AccentColor) {
		return fmt.Errorf("accent_color %q is not a hex color", c.AccentColor)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive")
	}
	return nil
}

// Site returns the site identity passed into templates.
func (c *Config) Site() views.Site {
	return views.Site{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}
