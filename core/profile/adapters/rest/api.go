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
	"app/modules/server"

	"github.com/labstack/echo/v4"
)

// ProfileAPI implements the HTTP API handlers for profile operations.
// It acts as the REST adapter in the hexagonal architecture, translating
// HTTP requests into domain operations.
type ProfileAPI struct {
	app      *domain.Application
	verifier *authn.Verifier

	// exposeSubject keeps the owner's subject identifier on serialized
	// profiles instead of stripping it.
	exposeSubject bool
}

type Option func(*ProfileAPI)

func WithExposedSubject(expose bool) Option {
	return func(p *ProfileAPI) { p.exposeSubject = expose }
}

// NewProfileService creates a new ProfileAPI instance with all dependencies.
func NewProfileService(reader domain.ProfileReadStore, writer domain.ProfileWriteStore, verifier *authn.Verifier, opts ...Option) *ProfileAPI {
	p := &ProfileAPI{
		app:      domain.NewApp(reader, writer),
		verifier: verifier,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ server.RegistrableService = (*ProfileAPI)(nil)

// Register mounts the profile routes. The middleware order encodes the
// request pipeline: authenticate, load the addressed record, check
// ownership, then run the operation. Each step short-circuits through
// the centralized error handler.
func (p *ProfileAPI) Register(e *echo.Echo) {
	auth := authn.Middleware(p.verifier)

	e.GET("/", p.Root)
	e.POST("/", p.Create)
	e.GET("/users", p.ListAll, auth)
	e.GET("/my-profile", p.FindSelf, auth)
	e.GET("/:id", p.FindOne, auth, p.loadProfile)
	e.PATCH("/:id", p.Update, auth, p.loadProfile, p.authorizeOwner)
	e.DELETE("/:id", p.Delete, auth, p.loadProfile, p.authorizeOwner)
}

// Root serves two purposes on the same path: a welcome document for
// anonymous callers, and the active-profile listing for authenticated
// ones. Presence of the Authorization header decides which.
func (p *ProfileAPI) Root(c echo.Context) error {
	if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Welcome to version 1 of this API!",
		})
	}

	// any verified caller may list active profiles
	if _, err := authn.Authenticate(p.verifier, c.Request()); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized,
			"Access token invalid or not provided.").SetInternal(err)
	}
	return p.ListActive(c)
}
