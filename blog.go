// Package blog is a personal blog and portfolio site engine built with Go,
// Echo, and templ. Content is a static tree of markdown files resolved into
// a route table at load time; the engine either serves it or builds it into
// a static site.
package blog

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App wires together the content store, cache, handlers, and middleware.
type App struct {
	Config *Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache

	themeLimiter *RateLimiter
}

// New creates an App with the given configuration.
func New(cfg *Config) *App {
	return &App{
		Config: cfg,
		Echo:   echo.New(),
	}
}

// Start initializes the store, cache, middleware, and routes, then starts
// the server. Route misconfiguration (duplicate slug, unknown home slug)
// fails here, before the server accepts any request.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("blog: session_secret is required")
	}
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("blog: config: %w", err)
	}

	store, err := NewStore(a.Config.ContentDir)
	if err != nil {
		return fmt.Errorf("blog: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewContentCache(store, a.Config.HomeSlug, a.Config.CacheTTL)
	a.themeLimiter = NewRateLimiter(30, time.Minute)

	// Prime the cache once so content and route errors surface at boot.
	if _, _, _, err := a.Cache.Snapshot(); err != nil {
		return fmt.Errorf("blog: load content: %w", err)
	}

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets: stylesheet and the client enhancement scripts.
	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.StaticFS("/assets", assets)

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleRoot)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/:slug/", a.handlePage)

	e.POST("/theme/", a.handleTheme)
}
