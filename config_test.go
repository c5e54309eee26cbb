package blog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Blog" {
		t.Errorf("Name = %q, want default", cfg.Name)
	}
	if cfg.HomeSlug != "hi" {
		t.Errorf("HomeSlug = %q, want default", cfg.HomeSlug)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want default", cfg.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.yml")
	data := []byte("name: Angelika\nurl: https://example.org/\nhome_slug: about\naccent_color: \"#112233\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Angelika" {
		t.Errorf("Name = %q, want Angelika", cfg.Name)
	}
	if cfg.URL != "https://example.org" {
		t.Errorf("URL = %q, trailing slash should be trimmed", cfg.URL)
	}
	if cfg.HomeSlug != "about" {
		t.Errorf("HomeSlug = %q, want about", cfg.HomeSlug)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, unset keys keep their defaults", cfg.Addr)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("BLOG_NAME", "From Env")
	t.Setenv("BLOG_ACCENT_COLOR", "#abcdef")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "From Env" {
		t.Errorf("Name = %q, want env override", cfg.Name)
	}
	if cfg.AccentColor != "#abcdef" {
		t.Errorf("AccentColor = %q, want env override", cfg.AccentColor)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty name", func(c *Config) { c.Name = "" }},
		{"empty url", func(c *Config) { c.URL = "" }},
		{"empty content dir", func(c *Config) { c.ContentDir = "" }},
		{"empty home slug", func(c *Config) { c.HomeSlug = "" }},
		{"bad accent color", func(c *Config) { c.AccentColor = "pink" }},
		{"zero cache ttl", func(c *Config) { c.CacheTTL = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
