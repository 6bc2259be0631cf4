package domain

import (
	"context"
	"errors"
	"log/slog"
)

func (app *Application) GetProfileByID(ctx context.Context, id string) (*Profile, error) {
	if id == "" {
		return nil, ErrProfileNotFound
	}
	prof, err := app.reader.GetByID(ctx, id)
	if err == nil {
		return prof, nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}

// GetOwnProfile resolves the caller's own profile by subject identifier.
// A subject without a profile yields ErrProfileNotFound; the transport layer
// decides how to shape that (the self endpoint serializes it as null).
func (app *Application) GetOwnProfile(ctx context.Context, subject string) (*Profile, error) {
	if subject == "" {
		return nil, ErrInvalidData
	}
	prof, err := app.reader.GetBySubject(ctx, subject)
	if err == nil {
		return prof, nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}
