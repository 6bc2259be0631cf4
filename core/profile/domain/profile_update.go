package domain

import (
	"context"
	"errors"
	"log/slog"
)

// UpdateProfile applies a partial update to an already-loaded profile and
// persists the merged document. Only fields present in upd are touched, so
// the operation is idempotent: applying the same update twice yields the
// same stored state.
//
// The caller is responsible for having authorized the owning subject before
// invoking this operation.
func (app *Application) UpdateProfile(ctx context.Context, loaded *Profile, upd *ProfileUpdate) (*Profile, error) {
	if loaded == nil || loaded.ID == "" {
		return nil, ErrInvalidData
	}

	merged := *loaded
	applyUpdate(&merged, upd)

	if err := validateProfile(&merged); err != nil {
		slog.DebugContext(ctx, "profile validation failed", slog.Any("error", err))
		return nil, err
	}

	saved, err := app.writer.Replace(ctx, &merged)
	if err == nil {
		return saved, nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if errors.Is(err, ErrInvalidData) {
		return nil, err
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}

// applyUpdate merges present fields of upd into p. Presence, not
// truthiness, decides whether a field is written: an explicit false or ""
// overwrites, an absent field never does. An explicit null clears the field.
func applyUpdate(p *Profile, upd *ProfileUpdate) {
	assign(&p.Name, upd.Name)
	assign(&p.Surname, upd.Surname)
	assign(&p.Gender, upd.Gender)
	assign(&p.ProfilePicture, upd.ProfilePicture)
	assign(&p.ContinentDestination, upd.ContinentDestination)
	assign(&p.CountryDestination, upd.CountryDestination)
	assign(&p.TravelDescription, upd.TravelDescription)
	assign(&p.GenderPreference, upd.GenderPreference)
	assign(&p.AgePreference, upd.AgePreference)
	assignPtr(&p.DateOfBirth, upd.DateOfBirth)
	assignPtr(&p.Active, upd.Active)
}

func assign[T any](dst *T, f Field[T]) {
	if !f.Set {
		return
	}
	if f.Null {
		var zero T
		*dst = zero
		return
	}
	*dst = f.Value
}

// assignPtr handles optional fields stored as pointers, where clearing
// means reverting to "unset" rather than to a zero value.
func assignPtr[T any](dst **T, f Field[T]) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}
