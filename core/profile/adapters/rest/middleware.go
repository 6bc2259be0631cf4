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
	"net/http"

	"app/core/profile/domain"
	"app/modules/authn"

	"github.com/labstack/echo/v4"
)

// profileKey is the request-scoped slot the loaded record lives in.
const profileKey = "rest.profile"

func profileFromContext(c echo.Context) *domain.Profile {
	p, _ := c.Get(profileKey).(*domain.Profile)
	return p
}

// loadProfile resolves the :id path parameter into a profile and attaches
// it to the request context. Unknown and malformed identifiers both
// short-circuit with a not-found; existence is settled before any
// ownership decision is made.
func (p *ProfileAPI) loadProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := p.app.GetProfileByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			return err
		}
		c.Set(profileKey, profile)
		return next(c)
	}
}

// authorizeOwner rejects callers whose subject does not match the loaded
// record's owner. Runs after loadProfile, so a 404 always wins over a 403
// and record existence never leaks to non-owners by status alone.
func (p *ProfileAPI) authorizeOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile := profileFromContext(c)
		if profile == nil || profile.UserID != authn.Subject(c) {
			return echo.NewHTTPError(http.StatusForbidden,
				"You are not allowed to modify this profile.")
		}
		return next(c)
	}
}
