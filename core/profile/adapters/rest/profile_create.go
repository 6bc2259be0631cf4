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

	"app/modules/serde"

	"github.com/labstack/echo/v4"
)

// Create registers a new profile. On success the response carries the new
// record's location and its generated identifier.
func (p *ProfileAPI) Create(c echo.Context) error {
	var req createRequest
	if err := serde.ParseJsonBody(c.Request().Body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	profile, err := p.app.CreateProfile(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/"+profile.ID)
	return c.JSON(http.StatusCreated, createdResponse{ID: profile.ID})
}
