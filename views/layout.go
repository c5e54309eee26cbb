package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a body component in the shared page shell: metadata in the
// <head>, the header navigation, the footer with the accent color picker,
// and the client enhancement scripts.
//
// The accent color is written as an inline style before the stylesheet link
// so the chosen theme is applied before first paint. An inline script then
// overlays any value kept in the browser's session storage, also before
// paint, so neither served nor statically built pages flash the default.
func Layout(ctx Ctx, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html>")
		buf.WriteString(`<html lang="en">`)
		writeHead(&buf, ctx)
		writeBodyOpen(&buf, ctx)
		if err := body.Render(c, &buf); err != nil {
			return err
		}
		writeBodyClose(&buf, ctx)
		buf.WriteString("</html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, ctx Ctx) {
	buf.WriteString("<head>")
	buf.WriteString(`<meta charset="utf-8"/>`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)

	title := ctx.Meta.Title
	if title == "" {
		title = ctx.Site.Name
	} else if ctx.Site.Name != "" && title != ctx.Site.Name {
		title += " · " + ctx.Site.Name
	}
	buf.WriteString("<title>")
	buf.WriteString(html.EscapeString(title))
	buf.WriteString("</title>")

	if ctx.Meta.Description != "" {
		buf.WriteString(`<meta name="description" content="` + html.EscapeString(ctx.Meta.Description) + `"/>`)
	}
	if ctx.Meta.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + html.EscapeString(ctx.Meta.URL) + `"/>`)
		buf.WriteString(`<meta property="og:url" content="` + html.EscapeString(ctx.Meta.URL) + `"/>`)
	}
	buf.WriteString(`<meta property="og:title" content="` + html.EscapeString(title) + `"/>`)
	if ctx.Meta.Description != "" {
		buf.WriteString(`<meta property="og:description" content="` + html.EscapeString(ctx.Meta.Description) + `"/>`)
	}
	ogType := ctx.Meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	buf.WriteString(`<meta property="og:type" content="` + html.EscapeString(ogType) + `"/>`)
	if ctx.CSRF != "" {
		buf.WriteString(`<meta name="csrf-token" content="` + html.EscapeString(ctx.CSRF) + `"/>`)
	}
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + html.EscapeString(ctx.Site.Name) + `" href="/feed.xml"/>`)

	// Accent color before the stylesheet: server value first, then the
	// session storage value, both ahead of first paint.
	buf.WriteString(`<style>:root{--accent-color:` + html.EscapeString(ctx.Accent) + `}</style>`)
	buf.WriteString(`<script>try{var c=sessionStorage.getItem("accent-color");if(c){document.documentElement.style.setProperty("--accent-color",c)}}catch(e){}</script>`)
	buf.WriteString(`<link rel="stylesheet" href="/assets/site.css"/>`)

	buf.WriteString(`<script type="application/ld+json">`)
	buf.WriteString(WebsiteJsonLD(ctx.Site))
	buf.WriteString("</script>")
	buf.WriteString("</head>")
}

func writeBodyOpen(buf *bytes.Buffer, ctx Ctx) {
	buf.WriteString(`<body data-accent-default="` + html.EscapeString(ctx.Accent) + `"`)
	if ctx.RedirectTo != "" {
		buf.WriteString(` data-redirect-to="` + html.EscapeString(ctx.RedirectTo) + `"`)
	}
	buf.WriteString(">")

	buf.WriteString(`<header class="site-header">`)
	buf.WriteString(`<a class="site-name" href="/">` + html.EscapeString(ctx.Site.Name) + `</a>`)
	buf.WriteString(`<nav class="site-nav" aria-label="Main">`)
	for _, l := range ctx.Nav {
		buf.WriteString(`<a href="` + html.EscapeString(l.Href) + `"`)
		if l.Current {
			buf.WriteString(` aria-current="page"`)
		}
		buf.WriteString(`>` + html.EscapeString(l.Label) + `</a>`)
	}
	buf.WriteString("</nav></header><main>")
}

func writeBodyClose(buf *bytes.Buffer, ctx Ctx) {
	buf.WriteString("</main>")
	buf.WriteString(`<footer class="site-footer">`)
	buf.WriteString(`<label for="accent-color">Accent color</label>`)
	buf.WriteString(`<input type="color" id="accent-color" value="` + html.EscapeString(ctx.Accent) + `"/>`)
	if ctx.Site.Author != "" {
		buf.WriteString(`<p>© ` + html.EscapeString(ctx.Site.Author) + `</p>`)
	}
	buf.WriteString("</footer>")
	buf.WriteString(`<script src="/assets/redirect.js"></script>`)
	buf.WriteString(`<script src="/assets/theme.js"></script>`)
	buf.WriteString(`<script src="/assets/nav.js"></script>`)
	buf.WriteString("</body>")
}
