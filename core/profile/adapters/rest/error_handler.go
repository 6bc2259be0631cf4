// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"app/core/profile/domain"
	"app/modules/middleware/problem"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler builds the centralized error handler. Handlers and
// middlewares return errors instead of writing responses; everything funnels
// through here and leaves as an RFC 7807 problem document. Internal causes
// are logged, never serialized.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p := toProblem(c, err)
		if p.Status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
		} else {
			slog.DebugContext(c.Request().Context(), "request rejected",
				slog.Int("status", p.Status),
				slog.Any("error", err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(p.Status)
			return
		}
		c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
		_ = c.JSON(p.Status, p)
	}
}

func toProblem(c echo.Context, err error) *problem.Problem {
	var traceOpt problem.Option
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		traceOpt = problem.WithTraceID(id)
	}

	var he *echo.HTTPError
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &he):
		return problem.New(
			problem.WithStatus(he.Code),
			problem.WithTitle(http.StatusText(he.Code)),
			problem.WithDetail(fmt.Sprint(he.Message)),
			traceOpt,
		)
	case errors.As(err, &ve):
		return problem.Validation("profile validation failed",
			problem.WithInvalidParam(ve.Field, ve.Reason), traceOpt)
	case errors.Is(err, domain.ErrProfileNotFound):
		return problem.NotFound("profile not found", traceOpt)
	case errors.Is(err, domain.ErrDuplicateProfile):
		return problem.Conflict("a profile already exists for this user", traceOpt)
	case errors.Is(err, domain.ErrInvalidData):
		return problem.Validation("profile validation failed", traceOpt)
	default:
		return problem.Internal("server error", traceOpt)
	}
}
