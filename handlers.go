package blog

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/angelikatyborska/blog/views"
)

// handleRoot serves the root page: the home page's content under "/", with
// the redirect target embedded so the client script can rewrite the
// history entry to the real path.
func (a *App) handleRoot(c echo.Context) error {
	content, resolved, nav, err := a.Cache.Snapshot()
	if err != nil {
		return err
	}
	// The root entry is always first in the resolved set.
	return a.renderResolved(c, resolved[0], content, nav)
}

// handlePage serves a top-level page by slug.
func (a *App) handlePage(c echo.Context) error {
	content, resolved, nav, err := a.Cache.Snapshot()
	if err != nil {
		return err
	}
	path := "/" + c.Param("slug") + "/"
	for _, rp := range resolved {
		if rp.Path == path {
			return a.renderResolved(c, rp, content, nav)
		}
	}
	return echo.ErrNotFound
}

func (a *App) renderResolved(c echo.Context, rp ResolvedPage, content *Content, nav []views.NavLink) error {
	meta := views.PageMeta{
		Title:       rp.Title,
		Description: rp.Summary,
		URL:         BuildURL(a.Config.URL, rp.Slug),
		OGType:      "website",
	}
	ctx := a.viewCtx(c, meta, nav, rp.RedirectTo)
	if rp.Slug == a.Config.BlogSlug {
		tag := c.QueryParam("tag")
		return Render(c, views.Blog(ctx, rp.Page, content.PostsByTag(tag), tag, content.Tags))
	}
	return Render(c, views.StaticPage(ctx, rp.Page))
}

// handlePost serves a single blog post with prev/next links computed from
// the ordered post list.
func (a *App) handlePost(c echo.Context) error {
	content, _, nav, err := a.Cache.Snapshot()
	if err != nil {
		return err
	}
	slug := c.Param("slug")
	post, ok := content.PostBySlug(slug)
	if !ok {
		return echo.ErrNotFound
	}
	meta := views.PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         BuildURL(a.Config.URL, "blog", post.Slug),
		OGType:      "article",
	}
	ctx := a.viewCtx(c, meta, nav, "")
	prev, next := PostNav(content.Posts, post.Link)
	return Render(c, views.PostPage(ctx, post, prev, next))
}

// handleTheme persists a submitted accent color into the theme session.
func (a *App) handleTheme(c echo.Context) error {
	if !a.themeLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many theme changes. Try again later.")
	}
	if err := SetAccent(c, c.FormValue("color")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	content, resolved, _, err := a.Cache.Snapshot()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.Config.URL, resolved, content.Posts)
}

func (a *App) handleFeed(c echo.Context) error {
	content, _, _, err := a.Cache.Snapshot()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteRSS(c.Response(), a.Config.Site(), content.Posts)
}

// PostNav computes the prev/next links for the post at href within the
// ordered post list. Posts are ordered newest first, so prev points at the
// newer neighbour and next at the older one; at either end the
// corresponding link is nil.
func PostNav(posts []views.Post, href string) (prev, next *views.NavLink) {
	links := make([]views.NavLink, len(posts))
	for i, p := range posts {
		links[i] = views.NavLink{Href: p.Link, Label: p.Title}
	}
	links = MarkCurrent(links, href)
	if l, ok := Step(links, -1); ok {
		prev = &l
	}
	if l, ok := Step(links, +1); ok {
		next = &l
	}
	return prev, next
}

// viewCtx assembles the per-render context: session accent color, the
// navigation link set with a freshly computed current marker, and the CSRF
// token for the theme form.
func (a *App) viewCtx(c echo.Context, meta views.PageMeta, nav []views.NavLink, redirectTo string) views.Ctx {
	current := c.Request().URL.Path
	if redirectTo != "" {
		// On the root page the history entry is rewritten to the target
		// path, so the target's nav link is the current one.
		current = redirectTo
	}
	return views.Ctx{
		Site:       a.Config.Site(),
		Meta:       meta,
		Nav:        MarkCurrent(nav, current),
		Accent:     RestoreAccent(c, a.Config.AccentColor),
		RedirectTo: redirectTo,
		CSRF:       CsrfToken(c),
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	ctx := views.Ctx{
		Site:   a.Config.Site(),
		Accent: a.Config.AccentColor,
	}
	if _, _, nav, cerr := a.Cache.Snapshot(); cerr == nil {
		ctx.Nav = MarkCurrent(nav, c.Request().URL.Path)
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(ctx))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(ctx))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
