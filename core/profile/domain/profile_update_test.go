package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func seedProfile(t *testing.T, app *Application) *Profile {
	t.Helper()
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	created, err := app.CreateProfile(context.Background(), &NewProfile{
		UserID:             "auth0|owner",
		Name:               "Ada",
		Surname:            "Lovelace",
		CountryDestination: "Portugal",
		DateOfBirth:        &dob,
		AgePreference:      []int{25, 35},
		Active:             boolPtr(true),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return created
}

func TestUpdateProfile_TouchesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{
		Name: Field[string]{Set: true, Value: "Grace"},
	}
	updated, err := app.UpdateProfile(ctx, seeded, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "Grace" {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
	if updated.Surname != "Lovelace" || updated.CountryDestination != "Portugal" {
		t.Fatal("absent fields must keep their stored values")
	}
	if updated.Active == nil || !*updated.Active {
		t.Fatal("absent active flag must keep its stored value")
	}
}

func TestUpdateProfile_FalseIsAValue(t *testing.T) {
	// presence decides, not truthiness: an explicit false must overwrite
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{Active: Field[bool]{Set: true, Value: false}}
	updated, err := app.UpdateProfile(ctx, seeded, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Active == nil || *updated.Active {
		t.Fatalf("explicit false must be stored, got %v", updated.Active)
	}

	active, err := app.ListActiveProfiles(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatal("deactivated profile must leave the active listing")
	}
}

func TestUpdateProfile_EmptyStringIsAValue(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{Surname: Field[string]{Set: true, Value: ""}}
	updated, err := app.UpdateProfile(ctx, seeded, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Surname != "" {
		t.Fatalf("explicit empty string must overwrite, got %q", updated.Surname)
	}
}

func TestUpdateProfile_NullClears(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{
		DateOfBirth:   Field[time.Time]{Set: true, Null: true},
		AgePreference: Field[[]int]{Set: true, Null: true},
		Name:          Field[string]{Set: true, Null: true},
	}
	updated, err := app.UpdateProfile(ctx, seeded, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DateOfBirth != nil {
		t.Fatal("null must clear the optional date")
	}
	if updated.AgePreference != nil {
		t.Fatal("null must clear the slice")
	}
	if updated.Name != "" {
		t.Fatalf("null must clear the string, got %q", updated.Name)
	}
}

func TestUpdateProfile_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{
		Name:   Field[string]{Set: true, Value: "Grace"},
		Active: Field[bool]{Set: true, Value: false},
	}

	first, err := app.UpdateProfile(ctx, seeded, upd)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := app.UpdateProfile(ctx, first, upd)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	if first.Name != second.Name || *first.Active != *second.Active {
		t.Fatal("applying the same update twice must converge on the same state")
	}
}

func TestUpdateProfile_EmptyUpdateIsANoOp(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{}
	if !upd.Empty() {
		t.Fatal("zero-value update must report empty")
	}

	updated, err := app.UpdateProfile(ctx, seeded, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != seeded.Name || updated.Surname != seeded.Surname {
		t.Fatal("empty update must not change the document")
	}
}

func TestUpdateProfile_RejectsOversizedValue(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	upd := &ProfileUpdate{
		Name: Field[string]{Set: true, Value: strings.Repeat("x", MaxFieldLen+1)},
	}
	_, err := app.UpdateProfile(ctx, seeded, upd)
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}

	// the stored document must be untouched by the rejected update
	stored, err := app.GetProfileByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "Ada" {
		t.Fatalf("rejected update must not write, got name %q", stored.Name)
	}
}

func TestUpdateProfile_VanishedDocument(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)
	seeded := seedProfile(t, app)

	if err := app.DeleteProfile(ctx, seeded.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	upd := &ProfileUpdate{Name: Field[string]{Set: true, Value: "Grace"}}
	_, err := app.UpdateProfile(ctx, seeded, upd)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
