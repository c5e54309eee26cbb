package blog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

func themeEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	return e
}

func TestValidAccent(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#00ff00", true},
		{"#ABC", true},
		{"#d62f6d", true},
		{"", false},
		{"red", false},
		{"#00ff0", false},
		{"#00ff00;background:url(x)", false},
		{"00ff00", false},
	}
	for _, tt := range tests {
		if got := ValidAccent(tt.color); got != tt.want {
			t.Errorf("ValidAccent(%q) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestRestoreAccentDefaultIsPersisted(t *testing.T) {
	e := themeEcho(t)
	var got string
	e.GET("/", func(c echo.Context) error {
		got = RestoreAccent(c, "#112233")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got != "#112233" {
		t.Errorf("RestoreAccent = %q, want the default %q", got, "#112233")
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("restoring the default should persist it to the session")
	}
}

func TestSetThenRestoreAccent(t *testing.T) {
	e := themeEcho(t)
	e.POST("/set/", func(c echo.Context) error {
		if err := SetAccent(c, "#00ff00"); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	var got string
	e.GET("/get/", func(c echo.Context) error {
		got = RestoreAccent(c, "#112233")
		return c.NoContent(http.StatusOK)
	})

	setReq := httptest.NewRequest(http.MethodPost, "/set/", nil)
	setRec := httptest.NewRecorder()
	e.ServeHTTP(setRec, setReq)
	if setRec.Code != http.StatusNoContent {
		t.Fatalf("set returned %d, want %d", setRec.Code, http.StatusNoContent)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/get/", nil)
	for _, cookie := range setRec.Result().Cookies() {
		getReq.AddCookie(cookie)
	}
	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, getReq)

	if got != "#00ff00" {
		t.Errorf("RestoreAccent = %q, want the stored value %q unmodified", got, "#00ff00")
	}
}

func TestSetAccentRejectsInvalidColor(t *testing.T) {
	e := themeEcho(t)
	e.POST("/set/", func(c echo.Context) error {
		err := SetAccent(c, `#fff"><script>`)
		if err == nil {
			t.Error("expected SetAccent to reject an invalid color")
		}
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/set/", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)
}
