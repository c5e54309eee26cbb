package blog

import "github.com/angelikatyborska/blog/views"

// MarkCurrent returns a copy of links with the current marker set on the
// link matching path and cleared everywhere else. Stale markers from a
// previous render never survive because the whole set is recomputed.
func MarkCurrent(links []views.NavLink, path string) []views.NavLink {
	out := make([]views.NavLink, len(links))
	for i, l := range links {
		l.Current = l.Href == path
		out[i] = l
	}
	return out
}

// Step returns the link shift positions away from the current one.
// Shift is -1 for previous and +1 for next. Stepping past either end of
// the set, or stepping when no link is current, reports ok=false and the
// caller treats it as a no-op. There is no wraparound.
func Step(links []views.NavLink, shift int) (views.NavLink, bool) {
	current := -1
	for i, l := range links {
		if l.Current {
			current = i
			break
		}
	}
	if current < 0 {
		return views.NavLink{}, false
	}
	target := current + shift
	if target < 0 || target >= len(links) {
		return views.NavLink{}, false
	}
	return links[target], true
}
