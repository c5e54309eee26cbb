package views

// Site holds site-wide identity settings populated from configuration.
// Every handler passes this to templates so nothing is hardcoded.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Page is a top-level site page loaded from markdown. Pages form the
// route table; Order controls their position in the header navigation.
type Page struct {
	Slug      string
	Title     string
	CreatedOn string // YYYY-MM-DD
	Order     int
	Summary   string
	Content   string // rendered HTML
	Link      string
}

// Post is a blog post loaded from markdown and rendered by templates.
type Post struct {
	Slug    string
	Title   string
	Date    string // YYYY-MM-DD
	Tags    []string
	Summary string
	Content string // rendered HTML
	Link    string
	Draft   bool
}

// NavLink is one entry of the navigation link set. The Current marker is
// recomputed on every render, never cached across navigations.
type NavLink struct {
	Href    string
	Label   string
	Current bool
}

// Ctx is the per-render context passed into every page component:
// site identity, page metadata, the navigation link set with the current
// marker already computed, the session accent color, and the redirect
// target (root page only).
type Ctx struct {
	Site       Site
	Meta       PageMeta
	Nav        []NavLink
	Accent     string
	RedirectTo string
	CSRF       string
}
