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

package middleware

import (
	"strconv"
	"time"

	"app/modules/telemetry"

	"github.com/labstack/echo/v4"
)

// Telemetry records request metrics for every HTTP exchange. Place it first
// in the chain so that short-circuited requests (auth failures, rate limits)
// are counted too. A nil metrics handle disables recording.
func Telemetry(metrics *telemetry.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if metrics == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the centralized error handler write the response so
				// the recorded status matches what the client saw.
				c.Error(err)
			}

			res := c.Response()
			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			metrics.RecordRequest(
				c.Request().Context(),
				c.Request().Method,
				route,
				strconv.Itoa(res.Status),
				float64(time.Since(start).Milliseconds()),
				res.Size,
			)
			return nil
		}
	}
}
