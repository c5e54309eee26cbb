package blog

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"github.com/angelikatyborska/blog/views"
)

// Build renders the whole site into cfg.OutputDir as static files: one
// index.html per resolved page and post, the feeds, robots.txt, the static
// assets, and the embedded engine assets. Statically built pages carry the
// default accent color; the client script overlays the session value.
func Build(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	store, err := NewStore(cfg.ContentDir)
	if err != nil {
		return err
	}
	content, err := store.Load()
	if err != nil {
		return err
	}
	resolved, err := ResolvePages(content.Pages, cfg.HomeSlug)
	if err != nil {
		return err
	}
	nav := NavLinks(resolved)

	out := cfg.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clean output dir %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	b := &builder{cfg: cfg, content: content, nav: nav, out: out}

	for _, rp := range resolved {
		if err := b.writePage(rp); err != nil {
			return err
		}
	}
	for _, p := range content.Posts {
		if err := b.writePost(p); err != nil {
			return err
		}
	}
	if err := b.writeFeeds(resolved); err != nil {
		return err
	}
	if err := b.copyAssets(); err != nil {
		return err
	}
	return nil
}

type builder struct {
	cfg     *Config
	content *Content
	nav     []views.NavLink
	out     string
}

func (b *builder) ctx(meta views.PageMeta, currentPath, redirectTo string) views.Ctx {
	return views.Ctx{
		Site:       b.cfg.Site(),
		Meta:       meta,
		Nav:        MarkCurrent(b.nav, currentPath),
		Accent:     b.cfg.AccentColor,
		RedirectTo: redirectTo,
	}
}

func (b *builder) writePage(rp ResolvedPage) error {
	meta := views.PageMeta{
		Title:       rp.Title,
		Description: rp.Summary,
		URL:         BuildURL(b.cfg.URL, rp.Slug),
		OGType:      "website",
	}
	current := rp.Path
	if rp.RedirectTo != "" {
		current = rp.RedirectTo
	}
	ctx := b.ctx(meta, current, rp.RedirectTo)

	var cmp templ.Component
	if rp.Slug == b.cfg.BlogSlug {
		cmp = views.Blog(ctx, rp.Page, b.content.Posts, "", b.content.Tags)
	} else {
		cmp = views.StaticPage(ctx, rp.Page)
	}
	return b.writeHTML(rp.Path, cmp)
}

func (b *builder) writePost(p views.Post) error {
	meta := views.PageMeta{
		Title:       p.Title,
		Description: p.Summary,
		URL:         BuildURL(b.cfg.URL, "blog", p.Slug),
		OGType:      "article",
	}
	ctx := b.ctx(meta, p.Link, "")
	prev, next := PostNav(b.content.Posts, p.Link)
	return b.writeHTML(p.Link, views.PostPage(ctx, p, prev, next))
}

// writeHTML renders cmp into <out>/<path>/index.html.
func (b *builder) writeHTML(path string, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	dir := filepath.Join(b.out, filepath.FromSlash(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644)
}

func (b *builder) writeFeeds(resolved []ResolvedPage) error {
	var feed bytes.Buffer
	if err := WriteRSS(&feed, b.cfg.Site(), b.content.Posts); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(b.out, "feed.xml"), feed.Bytes(), 0o644); err != nil {
		return err
	}

	var sm bytes.Buffer
	if err := WriteSitemap(&sm, b.cfg.URL, resolved, b.content.Posts); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(b.out, "sitemap.xml"), sm.Bytes(), 0o644); err != nil {
		return err
	}

	robots := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", b.cfg.URL)
	return os.WriteFile(filepath.Join(b.out, "robots.txt"), []byte(robots), 0o644)
}

func (b *builder) copyAssets() error {
	assets, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		return err
	}
	if err := os.CopyFS(filepath.Join(b.out, "assets"), assets); err != nil {
		return fmt.Errorf("copy embedded assets: %w", err)
	}
	if _, err := os.Stat(b.cfg.StaticDir); os.IsNotExist(err) {
		return nil
	}
	if err := os.CopyFS(filepath.Join(b.out, "public"), os.DirFS(b.cfg.StaticDir)); err != nil {
		return fmt.Errorf("copy static dir: %w", err)
	}
	return nil
}
