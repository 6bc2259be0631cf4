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
	"net/http"

	"app/core/profile/domain"
	"app/modules/authn"

	"github.com/labstack/echo/v4"
)

// FindOne returns the record loaded by the preceding middleware. Any
// authenticated caller may read any profile.
func (p *ProfileAPI) FindOne(c echo.Context) error {
	return c.JSON(http.StatusOK, p.toResponse(profileFromContext(c)))
}

// FindSelf returns the caller's own profile, resolved through the verified
// subject rather than a path parameter. A caller without a profile gets a
// JSON null body, not an error: having no profile yet is a normal state.
func (p *ProfileAPI) FindSelf(c echo.Context) error {
	profile, err := p.app.GetOwnProfile(c.Request().Context(), authn.Subject(c))
	if errors.Is(err, domain.ErrProfileNotFound) {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.toResponse(profile))
}
