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

import "time"

type (
	Application struct {
		reader ProfileReadStore
		writer ProfileWriteStore
	}

	// Profile is the domain model used by the application layer.
	//
	// ID is derived from the store's internal key and is read-only.
	// UserID is the subject identifier extracted from the caller's
	// credential at creation time; it is unique and immutable.
	Profile struct {
		ID     string
		UserID string

		Name                 string
		Surname              string
		Gender               string
		DateOfBirth          *time.Time
		ProfilePicture       string
		ContinentDestination string
		CountryDestination   string
		TravelDescription    string
		AgePreference        []int
		GenderPreference     string

		// Active is tri-state: nil means the owner never chose a
		// visibility, which keeps the profile out of active listings.
		Active *bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// Field carries a single updatable value together with its presence
	// information, so that "omitted" and "explicitly set to a zero value"
	// stay distinguishable all the way down to the store. Null means the
	// caller sent an explicit JSON null to clear the field.
	Field[T any] struct {
		Set   bool
		Null  bool
		Value T
	}

	// ProfileUpdate is the partial-update document. Absent fields leave
	// the stored value untouched.
	ProfileUpdate struct {
		Name                 Field[string]
		Surname              Field[string]
		Gender               Field[string]
		DateOfBirth          Field[time.Time]
		ProfilePicture       Field[string]
		ContinentDestination Field[string]
		CountryDestination   Field[string]
		TravelDescription    Field[string]
		AgePreference        Field[[]int]
		GenderPreference     Field[string]
		Active               Field[bool]
	}

	// NewProfile carries the caller-supplied attributes of a creation
	// request. ID and timestamps are store-managed and deliberately absent.
	NewProfile struct {
		UserID string

		Name                 string
		Surname              string
		Gender               string
		DateOfBirth          *time.Time
		ProfilePicture       string
		ContinentDestination string
		CountryDestination   string
		TravelDescription    string
		AgePreference        []int
		GenderPreference     string
		Active               *bool
	}
)

// Empty reports whether the update would touch nothing.
func (u *ProfileUpdate) Empty() bool {
	return !(u.Name.Set || u.Surname.Set || u.Gender.Set || u.DateOfBirth.Set ||
		u.ProfilePicture.Set || u.ContinentDestination.Set || u.CountryDestination.Set ||
		u.TravelDescription.Set || u.AgePreference.Set || u.GenderPreference.Set ||
		u.Active.Set)
}
