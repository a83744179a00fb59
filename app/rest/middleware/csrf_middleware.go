package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CSRFTokenField is the form field carrying the CSRF token.
const CSRFTokenField = "csrf_token"

// CSRFCookie is the double-submit cookie name.
const CSRFCookie = "dashboard_csrf"

// CSRF protects the wizard form posts with a double-submit token: the token
// is issued as a cookie on GET and must come back in the form on POST.
func CSRF() echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:" + CSRFTokenField + ",header:X-CSRF-Token",
		CookieName:     CSRFCookie,
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		ContextKey:     "csrf",
	})
}

// CSRFToken returns the token issued for this request, for embedding in
// rendered forms.
func CSRFToken(c echo.Context) string {
	token, _ := c.Get("csrf").(string)
	return token
}
