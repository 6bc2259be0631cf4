package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/core/profile/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := parseID(oid.Hex())
	if err != nil {
		t.Fatalf("parse valid id: %v", err)
	}
	if parsed != oid {
		t.Fatalf("round trip mismatch: %v != %v", parsed, oid)
	}

	for _, bad := range []string{"", "zzz", "definitely-not-hex", "abc123"} {
		if _, err := parseID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDocRoundTrip(t *testing.T) {
	active := true
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Profile{
		ID:                 primitive.NewObjectID().Hex(),
		UserID:             "auth0|u1",
		Name:               "Ada",
		DateOfBirth:        &dob,
		CountryDestination: "Portugal",
		AgePreference:      []int{25, 35},
		Active:             &active,
		CreatedAt:          time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:          time.Now().UTC().Truncate(time.Millisecond),
	}

	doc := docFromDomain(p)
	oid, err := parseID(p.ID)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	doc.ID = oid

	back := doc.toDomain()
	if back.ID != p.ID || back.UserID != p.UserID || back.Name != p.Name {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if back.Active == nil || !*back.Active {
		t.Fatal("active flag lost in round trip")
	}
	if back.DateOfBirth == nil || !back.DateOfBirth.Equal(dob) {
		t.Fatal("date of birth lost in round trip")
	}
}

func TestDocOmitsUnsetOptionals(t *testing.T) {
	// unset attributes must be absent from the stored document, otherwise
	// the active-listing filter would have to reason about false vs missing
	doc := docFromNew(&domain.NewProfile{UserID: "auth0|u1"}, time.Now().UTC())

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"active", "dateOfBirth", "name", "agePreference"} {
		if _, present := m[key]; present {
			t.Fatalf("unset %q must not be stored, got %v", key, m)
		}
	}
	if m["userId"] != "auth0|u1" {
		t.Fatalf("subject must always be stored, got %v", m)
	}
}

func TestGetByID_MalformedIDIsNotFound(t *testing.T) {
	// a syntactically impossible identifier can't name any document, so it
	// reports not-found without a database round trip
	s := &ProfileStore{}
	_, err := s.GetByID(context.Background(), "not-an-object-id")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
