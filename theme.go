package blog

import (
	"fmt"
	"regexp"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// The accent color lives in a browser-session cookie (MaxAge 0), so it
// survives in-app navigations but not a new browsing session, matching
// the session storage the client script uses.
const (
	themeSessionName = "theme_session"
	accentKey        = "accent_color"
)

var reAccent = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidAccent reports whether color is a hex CSS color. Only validated
// values are ever echoed into markup.
func ValidAccent(color string) bool {
	return reAccent.MatchString(color)
}

// RestoreAccent returns the accent color stored in the session, falling
// back to def, and re-persists the result. Pages inline the returned value
// into the document head before any content renders.
func RestoreAccent(c echo.Context, def string) string {
	sess, err := session.Get(themeSessionName, c)
	if err != nil {
		return def
	}
	color, ok := sess.Values[accentKey].(string)
	if !ok || !ValidAccent(color) {
		color = def
	}
	sess.Values[accentKey] = color
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("save theme session: %v", err)
	}
	return color
}

// SetAccent validates and persists a new accent color into the session.
func SetAccent(c echo.Context, color string) error {
	if !ValidAccent(color) {
		return fmt.Errorf("invalid accent color %q", color)
	}
	sess, err := session.Get(themeSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[accentKey] = color
	return sess.Save(c.Request(), c.Response())
}
