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

// Delete removes the loaded record permanently. Deletion is immediate and
// unrecoverable; a repeat delete of the same identifier reports not found.
func (p *ProfileAPI) Delete(c echo.Context) error {
	if err := p.app.DeleteProfile(c.Request().Context(), profileFromContext(c).ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
