package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"
)

// memStore is an in-memory ProfileReadStore/ProfileWriteStore used to
// exercise the application layer without a live database.
type memStore struct {
	profiles map[string]*Profile
	nextID   int

	// failWith, when set, makes every call return this error.
	failWith error
}

func newMemStore() *memStore {
	return &memStore{profiles: map[string]*Profile{}, nextID: 1}
}

func (s *memStore) GetByID(_ context.Context, id string) (*Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	p, ok := s.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) GetBySubject(_ context.Context, subject string) (*Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.profiles {
		if p.UserID == subject {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (s *memStore) ListAll(_ context.Context) ([]Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memStore) ListActive(_ context.Context) ([]Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []Profile
	for _, p := range s.profiles {
		if p.Active != nil && *p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memStore) Create(_ context.Context, np *NewProfile) (*Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.profiles {
		if p.UserID == np.UserID {
			return nil, ErrDuplicateProfile
		}
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	p := &Profile{
		ID:                   strconv.Itoa(s.nextID),
		UserID:               np.UserID,
		Name:                 np.Name,
		Surname:              np.Surname,
		Gender:               np.Gender,
		DateOfBirth:          np.DateOfBirth,
		ProfilePicture:       np.ProfilePicture,
		ContinentDestination: np.ContinentDestination,
		CountryDestination:   np.CountryDestination,
		TravelDescription:    np.TravelDescription,
		AgePreference:        np.AgePreference,
		GenderPreference:     np.GenderPreference,
		Active:               np.Active,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	s.nextID++
	s.profiles[p.ID] = p
	cp := *p
	return &cp, nil
}

func (s *memStore) Replace(_ context.Context, p *Profile) (*Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if _, ok := s.profiles[p.ID]; !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	cp.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	s.profiles[p.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.profiles[id]; !ok {
		return ErrProfileNotFound
	}
	delete(s.profiles, id)
	return nil
}

var (
	_ ProfileReadStore  = (*memStore)(nil)
	_ ProfileWriteStore = (*memStore)(nil)
)

func boolPtr(b bool) *bool { return &b }

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and assigns an id", func(t *testing.T) {
		store := newMemStore()
		app := NewApp(store, store)

		created, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1", Name: "Ada"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected a generated id")
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Fatal("expected timestamps to be set")
		}
	})

	t.Run("rejects a second profile for the same subject", func(t *testing.T) {
		store := newMemStore()
		app := NewApp(store, store)

		if _, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1"}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1", Name: "other"})
		if !errors.Is(err, ErrDuplicateProfile) {
			t.Fatalf("expected ErrDuplicateProfile, got %v", err)
		}
	})

	t.Run("rejects a missing subject before touching the store", func(t *testing.T) {
		store := newMemStore()
		store.failWith = fmt.Errorf("store must not be reached")
		app := NewApp(store, store)

		_, err := app.CreateProfile(ctx, &NewProfile{Name: "nameless"})
		if !errors.Is(err, ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("masks unexpected store failures", func(t *testing.T) {
		store := newMemStore()
		store.failWith = fmt.Errorf("connection reset")
		app := NewApp(store, store)

		_, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1"})
		if !errors.Is(err, ErrUnhandled) {
			t.Fatalf("expected ErrUnhandled, got %v", err)
		}
	})
}

func TestGetProfileByID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)

	created, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := app.GetProfileByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "auth0|u1" {
		t.Fatalf("unexpected subject %q", got.UserID)
	}

	if _, err := app.GetProfileByID(ctx, "no-such-id"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := app.GetProfileByID(ctx, ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound for empty id, got %v", err)
	}
}

func TestGetOwnProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)

	if _, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|owner"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := app.GetOwnProfile(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("get own: %v", err)
	}
	if got.UserID != "auth0|owner" {
		t.Fatalf("unexpected subject %q", got.UserID)
	}

	if _, err := app.GetOwnProfile(ctx, "auth0|stranger"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestListProfiles_ActiveFiltering(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)

	seeds := []NewProfile{
		{UserID: "u-active", Active: boolPtr(true)},
		{UserID: "u-inactive", Active: boolPtr(false)},
		{UserID: "u-undecided"},
	}
	for i := range seeds {
		if _, err := app.CreateProfile(ctx, &seeds[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	all, err := app.ListAllProfiles(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(all))
	}

	active, err := app.ListActiveProfiles(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].UserID != "u-active" {
		t.Fatalf("active listing must contain exactly the explicitly active profile, got %+v", active)
	}
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	app := NewApp(store, store)

	created, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := app.DeleteProfile(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := app.GetProfileByID(ctx, created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("deleted profile must be gone, got %v", err)
	}
	// a repeat delete observes the gone state
	if err := app.DeleteProfile(ctx, created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound on repeat delete, got %v", err)
	}

	// the subject may register again after deletion
	if _, err := app.CreateProfile(ctx, &NewProfile{UserID: "auth0|u1"}); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
}
