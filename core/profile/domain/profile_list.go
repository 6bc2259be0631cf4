package domain

import (
	"context"
	"log/slog"
)

// ListAllProfiles returns every profile, unfiltered.
func (app *Application) ListAllProfiles(ctx context.Context) ([]Profile, error) {
	profiles, err := app.reader.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
		return nil, ErrUnhandled
	}
	return profiles, nil
}

// ListActiveProfiles returns only profiles whose owner explicitly set the
// active flag to true.
func (app *Application) ListActiveProfiles(ctx context.Context) ([]Profile, error) {
	profiles, err := app.reader.ListActive(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
		return nil, ErrUnhandled
	}
	return profiles, nil
}
