package blog

import (
	"encoding/xml"
	"io"

	"github.com/angelikatyborska/blog/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes the sitemap covering every resolved page and post.
// The root entry resolves to the bare base URL.
func WriteSitemap(w io.Writer, base string, resolved []ResolvedPage, posts []views.Post) error {
	urls := make([]sitemapURL, 0, len(resolved)+len(posts))
	for _, rp := range resolved {
		loc := base + "/"
		if rp.Path != "/" {
			loc = BuildURL(base, rp.Slug)
		}
		urls = append(urls, sitemapURL{Loc: loc, LastMod: rp.CreatedOn})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "blog", p.Slug),
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}
