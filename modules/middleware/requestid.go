package middleware

import (
	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestID stamps every request with a UUIDv7 so log lines and traces for
// one exchange can be correlated.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string {
			id, err := uuid.NewV7()
			if err != nil {
				return ""
			}
			return id.String()
		},
	})
}
