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

	"github.com/labstack/echo/v4"
)

// ListAll returns every stored profile, active or not.
func (p *ProfileAPI) ListAll(c echo.Context) error {
	profiles, err := p.app.ListAllProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.toResponses(profiles))
}

// ListActive returns only the profiles whose owners opted into visibility.
func (p *ProfileAPI) ListActive(c echo.Context) error {
	profiles, err := p.app.ListActiveProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p.toResponses(profiles))
}
