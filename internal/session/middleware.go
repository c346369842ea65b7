package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// CookieName carries the session id.
	CookieName = "avatar_session"
	contextKey = "session"
)

// Middleware attaches the caller's session to the request, starting a new
// one when the cookie is missing or refers to an expired session.
func Middleware(reg *Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var s *Session
			if cookie, err := c.Cookie(CookieName); err == nil {
				s, _ = reg.Get(cookie.Value)
			}
			if s == nil {
				s = reg.Create()
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(contextKey, s)
			return next(c)
		}
	}
}

// FromContext returns the session attached by Middleware.
func FromContext(c echo.Context) *Session {
	s, _ := c.Get(contextKey).(*Session)
	return s
}
