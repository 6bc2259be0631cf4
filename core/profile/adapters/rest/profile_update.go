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

// Update applies a partial update to the loaded record. Only fields present
// in the payload change; an explicit null clears a field. An empty payload
// is a valid no-op and still reports success.
func (p *ProfileAPI) Update(c echo.Context) error {
	var req updateRequest
	if err := serde.ParseJsonBody(c.Request().Body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	if _, err := p.app.UpdateProfile(c.Request().Context(), profileFromContext(c), req.toDomain()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
