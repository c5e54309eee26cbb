package blog

import (
	"testing"

	"github.com/angelikatyborska/blog/views"
)

func testLinks(current string) []views.NavLink {
	links := []views.NavLink{
		{Href: "/a/", Label: "A"},
		{Href: "/b/", Label: "B"},
		{Href: "/c/", Label: "C"},
	}
	return MarkCurrent(links, current)
}

func TestMarkCurrentExactlyOne(t *testing.T) {
	links := testLinks("/b/")
	count := 0
	for _, l := range links {
		if l.Current {
			count++
			if l.Href != "/b/" {
				t.Errorf("current marker on %q, want /b/", l.Href)
			}
		}
	}
	if count != 1 {
		t.Fatalf("got %d current links, want 1", count)
	}
}

func TestMarkCurrentRecomputedAfterNavigation(t *testing.T) {
	links := testLinks("/a/")
	// Simulated navigation to /b/: the whole marker set is recomputed,
	// updating exactly one link and clearing all others.
	links = MarkCurrent(links, "/b/")
	for _, l := range links {
		if l.Current != (l.Href == "/b/") {
			t.Errorf("link %q current = %v after navigating to /b/", l.Href, l.Current)
		}
	}
}

func TestMarkCurrentNoMatch(t *testing.T) {
	for _, l := range testLinks("/elsewhere/") {
		if l.Current {
			t.Errorf("link %q marked current for an unknown path", l.Href)
		}
	}
}

func TestStepNextAndPrevious(t *testing.T) {
	links := testLinks("/b/")

	next, ok := Step(links, +1)
	if !ok || next.Href != "/c/" {
		t.Errorf("Step(+1) = %+v, %v; want /c/, true", next, ok)
	}

	prev, ok := Step(links, -1)
	if !ok || prev.Href != "/a/" {
		t.Errorf("Step(-1) = %+v, %v; want /a/, true", prev, ok)
	}
}

func TestStepNoWraparound(t *testing.T) {
	if _, ok := Step(testLinks("/c/"), +1); ok {
		t.Error("Step(+1) from the last link should be a no-op")
	}
	if _, ok := Step(testLinks("/a/"), -1); ok {
		t.Error("Step(-1) from the first link should be a no-op")
	}
}

func TestStepNoCurrent(t *testing.T) {
	if _, ok := Step(testLinks("/elsewhere/"), +1); ok {
		t.Error("Step with no current link should be a no-op")
	}
}

func TestPostNav(t *testing.T) {
	posts := []views.Post{
		{Slug: "newest", Title: "Newest", Link: "/blog/newest/"},
		{Slug: "middle", Title: "Middle", Link: "/blog/middle/"},
		{Slug: "oldest", Title: "Oldest", Link: "/blog/oldest/"},
	}

	prev, next := PostNav(posts, "/blog/middle/")
	if prev == nil || prev.Href != "/blog/newest/" {
		t.Errorf("prev = %+v, want /blog/newest/", prev)
	}
	if next == nil || next.Href != "/blog/oldest/" {
		t.Errorf("next = %+v, want /blog/oldest/", next)
	}

	prev, next = PostNav(posts, "/blog/newest/")
	if prev != nil {
		t.Errorf("newest post should have no prev, got %+v", prev)
	}
	if next == nil || next.Href != "/blog/middle/" {
		t.Errorf("next = %+v, want /blog/middle/", next)
	}

	_, next = PostNav(posts, "/blog/oldest/")
	if next != nil {
		t.Errorf("oldest post should have no next, got %+v", next)
	}
}
