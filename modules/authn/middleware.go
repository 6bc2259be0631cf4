package authn

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// subjectKey is the request-scoped slot the authenticated identity lives in.
const subjectKey = "authn.subject"

// Subject returns the authenticated identity attached by Middleware.
func Subject(c echo.Context) string {
	sub, _ := c.Get(subjectKey).(string)
	return sub
}

// Authenticate verifies the request's Authorization header and returns the
// subject identifier. The scheme token must be exactly "Bearer"; anything
// else, including a missing header, is an ErrInvalidToken.
func Authenticate(v *Verifier, r *http.Request) (string, error) {
	scheme, token, found := strings.Cut(r.Header.Get(echo.HeaderAuthorization), " ")
	if !found || scheme != "Bearer" {
		return "", fmt.Errorf("%w: invalid authentication scheme", ErrInvalidToken)
	}
	return v.ParseSubject(token)
}

// Middleware authenticates the request and attaches the subject identifier
// to the request context for downstream steps. Failures short-circuit the
// chain with a 401; the cause travels as the internal error for logging and
// is never serialized to the client.
func Middleware(v *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sub, err := Authenticate(v, c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized,
					"Access token invalid or not provided.").SetInternal(err)
			}
			c.Set(subjectKey, sub)
			return next(c)
		}
	}
}
