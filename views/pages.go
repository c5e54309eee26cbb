package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// StaticPage renders a top-level page (including the root redirect page,
// which reuses the target page's content).
func StaticPage(ctx Ctx, page Page) templ.Component {
	return Layout(ctx, templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<article class="page">`)
		buf.WriteString("<h1>" + html.EscapeString(page.Title) + "</h1>")
		buf.WriteString(page.Content)
		buf.WriteString("</article>")
		_, err := w.Write(buf.Bytes())
		return err
	}))
}

// Blog renders the blog index: the page's own content followed by the post
// list, optionally filtered by tag.
func Blog(ctx Ctx, page Page, posts []Post, activeTag string, tags []string) templ.Component {
	return Layout(ctx, templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<section class="blog">`)
		buf.WriteString("<h1>" + html.EscapeString(page.Title) + "</h1>")
		buf.WriteString(page.Content)

		if len(tags) > 0 {
			buf.WriteString(`<ul class="tags">`)
			for _, t := range tags {
				buf.WriteString("<li>")
				href := "/blog/?tag=" + PathEscape(t)
				buf.WriteString(`<a href="` + html.EscapeString(href) + `"`)
				if t == activeTag {
					buf.WriteString(` class="active"`)
				}
				buf.WriteString(">" + html.EscapeString(t) + "</a></li>")
			}
			buf.WriteString("</ul>")
		}

		buf.WriteString(`<ul class="post-list">`)
		for _, p := range posts {
			buf.WriteString("<li>")
			buf.WriteString(`<a href="` + html.EscapeString(p.Link) + `">` + html.EscapeString(p.Title) + "</a>")
			buf.WriteString(`<time datetime="` + html.EscapeString(p.Date) + `">` + html.EscapeString(FormatDate(p.Date)) + "</time>")
			if p.Summary != "" {
				buf.WriteString("<p>" + html.EscapeString(p.Summary) + "</p>")
			}
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul></section>")
		_, err := w.Write(buf.Bytes())
		return err
	}))
}

// PostPage renders a single blog post with prev/next links computed from
// the ordered post list. A nil prev or next means the post sits at the
// corresponding end of the list and no link is rendered.
func PostPage(ctx Ctx, post Post, prev, next *NavLink) templ.Component {
	return Layout(ctx, templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<article class="post">`)
		buf.WriteString("<h1>" + html.EscapeString(post.Title) + "</h1>")
		buf.WriteString(`<time datetime="` + html.EscapeString(post.Date) + `">` + html.EscapeString(FormatDate(post.Date)) + "</time>")
		if len(post.Tags) > 0 {
			buf.WriteString(`<p class="post-tags">` + html.EscapeString(JoinTags(post.Tags)) + "</p>")
		}
		buf.WriteString(post.Content)
		buf.WriteString("</article>")

		buf.WriteString(`<nav class="post-nav" aria-label="Posts">`)
		if prev != nil {
			buf.WriteString(`<a rel="prev" href="` + html.EscapeString(prev.Href) + `">← ` + html.EscapeString(prev.Label) + "</a>")
		}
		if next != nil {
			buf.WriteString(`<a rel="next" href="` + html.EscapeString(next.Href) + `">` + html.EscapeString(next.Label) + " →</a>")
		}
		buf.WriteString("</nav>")

		buf.WriteString(`<script type="application/ld+json">`)
		buf.WriteString(BlogPostingJsonLD(ctx.Site, post))
		buf.WriteString("</script>")
		_, err := w.Write(buf.Bytes())
		return err
	}))
}

// NotFound renders the styled 404 page.
func NotFound(ctx Ctx) templ.Component {
	return Layout(ctx, message("Page not found", "The page you are looking for does not exist."))
}

// ServerError renders the styled 500 page.
func ServerError(ctx Ctx) templ.Component {
	return Layout(ctx, message("Something went wrong", "An unexpected error occurred. Please try again later."))
}

func message(title, text string) templ.Component {
	return templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<section class="message">`)
		buf.WriteString("<h1>" + html.EscapeString(title) + "</h1>")
		buf.WriteString("<p>" + html.EscapeString(text) + "</p>")
		buf.WriteString("</section>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}
