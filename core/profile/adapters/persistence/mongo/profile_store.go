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

package mongo

import (
	"context"
	"errors"
	"time"

	"app/core/profile/domain"
	"app/modules/clock"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ domain.ProfileReadStore = (*ProfileStore)(nil)
var _ domain.ProfileWriteStore = (*ProfileStore)(nil)

// ProfileStore is the document-collection adapter behind the profile ports.
// The external identifier it hands out is the hex form of the collection's
// internal key; the internal key itself never leaves this package.
type ProfileStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewProfileStore(client *Client, collection string) *ProfileStore {
	clk := clock.RealClockProvider()
	return &ProfileStore{
		coll: client.Collection(collection),
		// BSON datetimes carry millisecond precision; truncating up front
		// keeps a written document equal to its re-read form.
		now: func() time.Time { return clk.Now().UTC().Truncate(time.Millisecond) },
	}
}

// EnsureIndexes declares the unique secondary key on the subject
// identifier. The index is the concurrency safety net for duplicate-subject
// creation races, so it must exist before the store serves writes.
func (s *ProfileStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetByID implements domain.ProfileReadStore. Identifiers that cannot be a
// valid internal key resolve to ErrProfileNotFound rather than an error of
// their own: from the API's point of view such a document simply does not exist.
func (s *ProfileStore) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc profileDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// GetBySubject implements domain.ProfileReadStore.
func (s *ProfileStore) GetBySubject(ctx context.Context, subject string) (*domain.Profile, error) {
	var doc profileDoc
	if err := s.coll.FindOne(ctx, bson.M{"userId": subject}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// ListAll implements domain.ProfileReadStore.
func (s *ProfileStore) ListAll(ctx context.Context) ([]domain.Profile, error) {
	return s.list(ctx, bson.D{})
}

// ListActive implements domain.ProfileReadStore. Documents without the
// active flag are excluded by the exact-match filter.
func (s *ProfileStore) ListActive(ctx context.Context) ([]domain.Profile, error) {
	return s.list(ctx, bson.M{"active": true})
}

func (s *ProfileStore) list(ctx context.Context, filter any) ([]domain.Profile, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []domain.Profile{}
	for cur.Next(ctx) {
		var doc profileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		profiles = append(profiles, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Create implements domain.ProfileWriteStore.
func (s *ProfileStore) Create(ctx context.Context, np *domain.NewProfile) (*domain.Profile, error) {
	now := s.now()
	doc := docFromNew(np, now)

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateProfile
		}
		return nil, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// Replace implements domain.ProfileWriteStore. The whole document is
// rewritten atomically; the update timestamp is refreshed on the way in.
func (s *ProfileStore) Replace(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	oid, err := parseID(p.ID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	doc := docFromDomain(p)
	doc.ID = oid
	doc.UpdatedAt = s.now()

	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateProfile
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return doc.toDomain(), nil
}

// Delete implements domain.ProfileWriteStore.
func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
