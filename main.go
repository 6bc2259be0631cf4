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

package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/modules/appconfig"
	"app/modules/authn"
	"app/modules/middleware"
	"app/modules/middleware/ratelimit"
	"app/modules/server"
	"app/modules/telemetry"

	persistence "app/core/profile/adapters/persistence/mongo"
	profile_http "app/core/profile/adapters/rest"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

// OpenAPI specs for request validation at runtime
//
//go:embed modules/oapi/*.yaml
var validationSpecFS embed.FS

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	// cancel the context when these signals occur
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	// manual dependency injection, no need to over-engineer with DI frameworks
	slog.SetLogLoggerLevel(slog.LevelDebug)

	// --- application config ----

	// .env is a local development convenience; absence is fine
	_ = godotenv.Load()

	appConfig, err := appconfig.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", slog.Any("error", err))
		exitCode = 1
		return
	}

	// --- infrastructure ---

	verifier, err := authn.VerifierFromConfig(appConfig.Auth)
	if err != nil {
		slog.ErrorContext(ctx, "token verifier setup error", slog.Any("error", err))
		exitCode = 1
		return
	}

	mongoClient, err := persistence.NewClient(ctx, appConfig.Mongo)
	if err != nil {
		slog.ErrorContext(ctx, "database error", slog.Any("error", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := mongoClient.Shutdown(context.Background()); err != nil {
			slog.ErrorContext(ctx, "database shutdown error", slog.Any("error", err))
		}
	}()

	if err := mongoClient.HealthCheck(ctx); err != nil {
		slog.ErrorContext(ctx, "database health check failed", slog.Any("error", err))
		exitCode = 1
		return
	}

	store := persistence.NewProfileStore(mongoClient, appConfig.Mongo.Collection)
	if err := store.EnsureIndexes(ctx); err != nil {
		slog.ErrorContext(ctx, "index creation error", slog.Any("error", err))
		exitCode = 1
		return
	}

	otelShutdown, err := telemetry.Init(ctx, appConfig.Otel)
	if err != nil {
		slog.ErrorContext(ctx, "telemetry not properly configured", slog.Any("error", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.ErrorContext(ctx, "telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// --- application layer ---

	profileApi := profile_http.NewProfileService(
		store, store, verifier,
		profile_http.WithExposedSubject(appConfig.ExposeSubject),
	)

	// Initialize HTTP metrics for middleware-based instrumentation
	httpMetrics, err := telemetry.NewHTTPMetrics("profile-api")
	if err != nil {
		slog.WarnContext(ctx, "failed to initialize HTTP metrics, continuing without metrics", slog.Any("error", err))
		httpMetrics = nil
	}

	validate, err := middleware.OpenAPIValidation(validationSpecFS, "modules/oapi/profile-api.yaml")
	if err != nil {
		slog.ErrorContext(ctx, "request validation setup error", slog.Any("error", err))
		exitCode = 1
		return
	}

	srv, err := server.New(
		appConfig.Host, appConfig.Port,
		server.WithWriteTimeout(10*time.Second),
		server.WithServices(profileApi),
		server.WithErrorHandler(profile_http.NewHTTPErrorHandler()),
		server.WithGlobalMiddlewares(
			middleware.Telemetry(httpMetrics),
			middleware.RequestID(),
			ratelimit.Middleware(appConfig.RateLimit),
			echo.WrapMiddleware(validate),
			middleware.Recovery(),
		),
	)
	if err != nil {
		slog.ErrorContext(ctx, "init server error", slog.Any("error", err))
		exitCode = 1
		return
	}

	if err := srv.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "running server error", slog.Any("error", err))
		exitCode = 1
		return
	}
}
