package blog

import (
	"fmt"

	"github.com/angelikatyborska/blog/views"
)

// ResolvedPage is one output page of route resolution. The root entry is a
// duplicate of the home page's properties differing only in path; its
// RedirectTo carries the real path the browser history is rewritten to.
type ResolvedPage struct {
	views.Page
	Path       string
	RedirectTo string
}

// ResolvePages turns the ordered page list into the full set of output
// pages: one page per entry at /<slug>/, plus the root page duplicating
// the homeSlug entry. For N input pages it returns exactly N+1 results.
//
// An empty or duplicate slug, or a homeSlug that matches no page, is a
// configuration error and resolution fails before any page is produced.
func ResolvePages(pages []views.Page, homeSlug string) ([]ResolvedPage, error) {
	seen := make(map[string]struct{}, len(pages))
	var home *views.Page
	for i, p := range pages {
		if p.Slug == "" {
			return nil, fmt.Errorf("page %q has an empty slug", p.Title)
		}
		if _, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate page slug %q", p.Slug)
		}
		seen[p.Slug] = struct{}{}
		if p.Slug == homeSlug {
			home = &pages[i]
		}
	}
	if home == nil {
		return nil, fmt.Errorf("home slug %q does not match any page", homeSlug)
	}

	resolved := make([]ResolvedPage, 0, len(pages)+1)
	resolved = append(resolved, ResolvedPage{
		Page:       *home,
		Path:       "/",
		RedirectTo: home.Link,
	})
	for _, p := range pages {
		resolved = append(resolved, ResolvedPage{Page: p, Path: p.Link})
	}
	return resolved, nil
}

// NavLinks derives the navigation link set from resolved pages, skipping
// the root entry. Current markers are left unset; they are recomputed per
// render with MarkCurrent.
func NavLinks(resolved []ResolvedPage) []views.NavLink {
	var links []views.NavLink
	for _, p := range resolved {
		if p.Path == "/" {
			continue
		}
		links = append(links, views.NavLink{Href: p.Path, Label: p.Title})
	}
	return links
}
