package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/angelikatyborska/blog/markdown"
	"github.com/angelikatyborska/blog/views"
)

// Store loads site content from a directory of markdown files. Top-level
// pages live under pages/ and form the route table; blog posts live under
// posts/. All properties are known at load time and immutable afterwards.
type Store struct {
	dir string
}

// Content is one immutable snapshot of the site's content.
type Content struct {
	Pages []views.Page // route table order (front matter `order`, then slug)
	Posts []views.Post // date descending, drafts excluded
	Tags  []string     // sorted, deduplicated tags of all posts
}

type pageMatter struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Order   int    `yaml:"order"`
	Summary string `yaml:"summary"`
}

type postMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags"`
	Summary string   `yaml:"summary"`
	Draft   bool     `yaml:"draft"`
}

// NewStore creates a Store rooted at dir. The pages directory must exist;
// a site without posts is fine.
func NewStore(dir string) (*Store, error) {
	if _, err := os.Stat(filepath.Join(dir, "pages")); err != nil {
		return nil, fmt.Errorf("content dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Load reads and renders every markdown file. Malformed front matter, a
// missing title, or a bad date is a fatal configuration error reported
// with the offending file's path.
func (s *Store) Load() (*Content, error) {
	pages, err := s.loadPages()
	if err != nil {
		return nil, err
	}
	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Slug < pages[j].Slug
	})
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})

	return &Content{
		Pages: pages,
		Posts: posts,
		Tags:  collectTags(posts),
	}, nil
}

func (s *Store) loadPages() ([]views.Page, error) {
	paths, err := markdownFiles(filepath.Join(s.dir, "pages"))
	if err != nil {
		return nil, err
	}
	var pages []views.Page
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		var matter pageMatter
		rest, err := frontmatter.Parse(f, &matter)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: parse front matter: %w", path, err)
		}
		if err := checkMatter(path, matter.Title, matter.Date); err != nil {
			return nil, err
		}
		body, err := markdown.Render(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: render markdown: %w", path, err)
		}
		slug := slugFromPath(path)
		pages = append(pages, views.Page{
			Slug:      slug,
			Title:     matter.Title,
			CreatedOn: matter.Date,
			Order:     matter.Order,
			Summary:   matter.Summary,
			Content:   body,
			Link:      "/" + slug + "/",
		})
	}
	return pages, nil
}

func (s *Store) loadPosts() ([]views.Post, error) {
	dir := filepath.Join(s.dir, "posts")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	paths, err := markdownFiles(dir)
	if err != nil {
		return nil, err
	}
	var posts []views.Post
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		var matter postMatter
		rest, err := frontmatter.Parse(f, &matter)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: parse front matter: %w", path, err)
		}
		if matter.Draft {
			continue
		}
		if err := checkMatter(path, matter.Title, matter.Date); err != nil {
			return nil, err
		}
		body, err := markdown.Render(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: render markdown: %w", path, err)
		}
		slug := slugFromPath(path)
		posts = append(posts, views.Post{
			Slug:    slug,
			Title:   matter.Title,
			Date:    matter.Date,
			Tags:    normalizeTags(matter.Tags),
			Summary: matter.Summary,
			Content: body,
			Link:    "/blog/" + slug + "/",
		})
	}
	return posts, nil
}

// PostBySlug returns the published post with the given slug.
func (c *Content) PostBySlug(slug string) (views.Post, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return views.Post{}, false
}

// PostsByTag returns posts carrying the given tag, or all posts when tag
// is empty.
func (c *Content) PostsByTag(tag string) []views.Post {
	if tag == "" {
		return c.Posts
	}
	normalized := strings.ToLower(strings.TrimSpace(tag))
	var filtered []views.Post
	for _, p := range c.Posts {
		for _, t := range p.Tags {
			if t == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

func markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func slugFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".md")
}

func checkMatter(path, title, date string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%s: front matter is missing a title", path)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%s: front matter date %q is not YYYY-MM-DD", path, date)
	}
	return nil
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if s := strings.ToLower(strings.TrimSpace(t)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func collectTags(posts []views.Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	var result []string
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}
