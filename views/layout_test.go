package views

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderLayout(t *testing.T, ctx Ctx) string {
	t.Helper()
	body := templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")
		return err
	})
	var buf bytes.Buffer
	if err := Layout(ctx, body).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func testCtx() Ctx {
	return Ctx{
		Site:   Site{Name: "Test Site", URL: "https://example.org", Author: "Tester"},
		Meta:   PageMeta{Title: "A Page", URL: "https://example.org/a-page/"},
		Accent: "#d62f6d",
		Nav: []NavLink{
			{Href: "/hi/", Label: "Hi"},
			{Href: "/a-page/", Label: "A Page", Current: true},
		},
	}
}

func TestLayoutAccentBeforeStylesheet(t *testing.T) {
	got := renderLayout(t, testCtx())

	style := strings.Index(got, "--accent-color:#d62f6d")
	restore := strings.Index(got, `sessionStorage.getItem("accent-color")`)
	stylesheet := strings.Index(got, `href="/assets/site.css"`)
	if style == -1 || restore == -1 || stylesheet == -1 {
		t.Fatalf("layout missing accent style, restore script or stylesheet:\n%s", got)
	}
	if !(style < restore && restore < stylesheet) {
		t.Error("accent style and session restore must come before the stylesheet link")
	}
}

func TestLayoutBodyAttributes(t *testing.T) {
	ctx := testCtx()
	got := renderLayout(t, ctx)
	if !strings.Contains(got, `data-accent-default="#d62f6d"`) {
		t.Error("body should carry the default accent color")
	}
	if strings.Contains(got, "data-redirect-to") {
		t.Error("body should not carry a redirect target unless one is set")
	}

	ctx.RedirectTo = "/hi/"
	got = renderLayout(t, ctx)
	if !strings.Contains(got, `data-redirect-to="/hi/"`) {
		t.Error("body should carry the redirect target when set")
	}
}

func TestLayoutNavCurrent(t *testing.T) {
	got := renderLayout(t, testCtx())
	if !strings.Contains(got, `<a href="/a-page/" aria-current="page">A Page</a>`) {
		t.Error("current nav link should carry aria-current")
	}
	if strings.Contains(got, `<a href="/hi/" aria-current="page">`) {
		t.Error("non-current nav links must not carry aria-current")
	}
	if strings.Count(got, `aria-current="page"`) != 1 {
		t.Error("exactly one nav link may be marked current")
	}
}

func TestLayoutFooterColorPicker(t *testing.T) {
	got := renderLayout(t, testCtx())
	if !strings.Contains(got, `<input type="color" id="accent-color" value="#d62f6d"/>`) {
		t.Error("footer should render the accent color picker with the active value")
	}
	for _, script := range []string{"/assets/redirect.js", "/assets/theme.js", "/assets/nav.js"} {
		if !strings.Contains(got, `<script src="`+script+`"></script>`) {
			t.Errorf("layout missing script %s", script)
		}
	}
}

func TestLayoutTitle(t *testing.T) {
	got := renderLayout(t, testCtx())
	if !strings.Contains(got, "<title>A Page · Test Site</title>") {
		t.Error("page title should combine page and site names")
	}

	ctx := testCtx()
	ctx.Meta.Title = ""
	got = renderLayout(t, ctx)
	if !strings.Contains(got, "<title>Test Site</title>") {
		t.Error("pages without a title should fall back to the site name")
	}
}
