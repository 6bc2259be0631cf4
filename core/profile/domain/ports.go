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

package domain

import "context"

// ProfileReadStore defines the port for read operations on profiles.
//
// Read/Write Separation Pattern:
// This interface is separated from ProfileWriteStore so implementations can
// route reads and writes differently (e.g. secondary-preferred reads) without
// the application layer knowing.
//
// Implementation Notes:
//   - All methods are read-only and must never modify data
//   - A missing document is ErrProfileNotFound, not a nil/nil pair
type ProfileReadStore interface {
	// GetByID retrieves a single profile by its external identifier.
	// Returns ErrProfileNotFound if no document has that identifier, which
	// includes identifiers that cannot be a valid internal key.
	GetByID(ctx context.Context, id string) (*Profile, error)

	// GetBySubject retrieves the profile owned by the given subject
	// identifier. Returns ErrProfileNotFound when the subject has no profile.
	GetBySubject(ctx context.Context, subject string) (*Profile, error)

	// ListAll returns every profile, unfiltered.
	ListAll(ctx context.Context) ([]Profile, error)

	// ListActive returns the profiles whose active flag is explicitly true.
	// Profiles that never set the flag are excluded.
	ListActive(ctx context.Context) ([]Profile, error)
}

// ProfileWriteStore defines the port for write operations on profiles.
//
// All mutation is a single atomic per-document operation; there is no
// cross-document transaction requirement in this contract. The store's
// unique index on the subject identifier is the safety net for concurrent
// duplicate-subject creation races.
type ProfileWriteStore interface {
	// Create inserts a new profile document and returns it with the
	// store-generated identifier and timestamps filled in.
	// Returns ErrDuplicateProfile if a profile already exists for the subject.
	Create(ctx context.Context, np *NewProfile) (*Profile, error)

	// Replace overwrites the stored document for p.ID with p, refreshing the
	// update timestamp. Returns ErrProfileNotFound if the document vanished
	// between load and write.
	Replace(ctx context.Context, p *Profile) (*Profile, error)

	// Delete removes the document by external identifier. Deleting an absent
	// document returns ErrProfileNotFound.
	Delete(ctx context.Context, id string) error
}
