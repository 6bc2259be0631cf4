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

package rest

import (
	"time"

	"app/core/profile/domain"
	"app/modules/serde"

	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime/types"
)

// createRequest is the creation payload. Dates travel as RFC 3339 full-date
// strings on the wire.
type createRequest struct {
	UserID               string      `json:"userId"`
	Name                 string      `json:"name"`
	Surname              string      `json:"surname"`
	Gender               string      `json:"gender"`
	DateOfBirth          *types.Date `json:"dateOfBirth"`
	ProfilePicture       string      `json:"profilePicture"`
	ContinentDestination string      `json:"continentDestination"`
	CountryDestination   string      `json:"countryDestination"`
	TravelDescription    string      `json:"travelDescription"`
	AgePreference        []int       `json:"agePreference"`
	GenderPreference     string      `json:"genderPreference"`
	Active               *bool       `json:"active"`
}

func (r *createRequest) toDomain() *domain.NewProfile {
	p := &domain.NewProfile{
		UserID:               r.UserID,
		Name:                 r.Name,
		Surname:              r.Surname,
		Gender:               r.Gender,
		ProfilePicture:       r.ProfilePicture,
		ContinentDestination: r.ContinentDestination,
		CountryDestination:   r.CountryDestination,
		TravelDescription:    r.TravelDescription,
		AgePreference:        r.AgePreference,
		GenderPreference:     r.GenderPreference,
		Active:               r.Active,
	}
	if r.DateOfBirth != nil {
		t := r.DateOfBirth.Time
		p.DateOfBirth = &t
	}
	return p
}

// updateRequest is the partial-update payload. Every member is tri-state:
// absent leaves the stored value alone, an explicit null clears it, and a
// value replaces it. A field set to its zero value is still a set field.
type updateRequest struct {
	Name                 nullable.Nullable[string]     `json:"name"`
	Surname              nullable.Nullable[string]     `json:"surname"`
	Gender               nullable.Nullable[string]     `json:"gender"`
	DateOfBirth          nullable.Nullable[types.Date] `json:"dateOfBirth"`
	ProfilePicture       nullable.Nullable[string]     `json:"profilePicture"`
	ContinentDestination nullable.Nullable[string]     `json:"continentDestination"`
	CountryDestination   nullable.Nullable[string]     `json:"countryDestination"`
	TravelDescription    nullable.Nullable[string]     `json:"travelDescription"`
	AgePreference        nullable.Nullable[[]int]      `json:"agePreference"`
	GenderPreference     nullable.Nullable[string]     `json:"genderPreference"`
	Active               nullable.Nullable[bool]       `json:"active"`
}

func toField[T any](n nullable.Nullable[T]) domain.Field[T] {
	switch {
	case !n.IsSpecified():
		return domain.Field[T]{}
	case n.IsNull():
		return domain.Field[T]{Set: true, Null: true}
	default:
		return domain.Field[T]{Set: true, Value: n.MustGet()}
	}
}

func (r *updateRequest) toDomain() *domain.ProfileUpdate {
	upd := &domain.ProfileUpdate{
		Name:                 toField(r.Name),
		Surname:              toField(r.Surname),
		Gender:               toField(r.Gender),
		ProfilePicture:       toField(r.ProfilePicture),
		ContinentDestination: toField(r.ContinentDestination),
		CountryDestination:   toField(r.CountryDestination),
		TravelDescription:    toField(r.TravelDescription),
		AgePreference:        toField(r.AgePreference),
		GenderPreference:     toField(r.GenderPreference),
		Active:               toField(r.Active),
	}
	if date := toField(r.DateOfBirth); date.Set {
		upd.DateOfBirth = domain.Field[time.Time]{
			Set:   true,
			Null:  date.Null,
			Value: date.Value.Time,
		}
	}
	return upd
}

// profileResponse is the outbound representation. The owner's subject
// identifier is stripped unless the service is configured to expose it.
type profileResponse struct {
	ID                   string      `json:"id"`
	UserID               string      `json:"userId,omitempty"`
	Name                 string      `json:"name,omitempty"`
	Surname              string      `json:"surname,omitempty"`
	Gender               string      `json:"gender,omitempty"`
	DateOfBirth          *types.Date `json:"dateOfBirth,omitempty"`
	ProfilePicture       string      `json:"profilePicture,omitempty"`
	ContinentDestination string      `json:"continentDestination,omitempty"`
	CountryDestination   string      `json:"countryDestination,omitempty"`
	TravelDescription    string      `json:"travelDescription,omitempty"`
	AgePreference        []int       `json:"agePreference,omitempty"`
	GenderPreference     string      `json:"genderPreference,omitempty"`
	Active               *bool       `json:"active,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func (p *ProfileAPI) toResponse(profile *domain.Profile) *profileResponse {
	resp := &profileResponse{
		ID:                   profile.ID,
		Name:                 profile.Name,
		Surname:              profile.Surname,
		Gender:               profile.Gender,
		ProfilePicture:       profile.ProfilePicture,
		ContinentDestination: profile.ContinentDestination,
		CountryDestination:   profile.CountryDestination,
		TravelDescription:    profile.TravelDescription,
		AgePreference:        profile.AgePreference,
		GenderPreference:     profile.GenderPreference,
		Active:               profile.Active,
		CreatedAt:            profile.CreatedAt,
		UpdatedAt:            profile.UpdatedAt,
	}
	if p.exposeSubject {
		resp.UserID = profile.UserID
	}
	if profile.DateOfBirth != nil {
		resp.DateOfBirth = serde.Ptr(types.Date{Time: *profile.DateOfBirth})
	}
	return resp
}

func (p *ProfileAPI) toResponses(profiles []domain.Profile) []*profileResponse {
	out := make([]*profileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, p.toResponse(&profiles[i]))
	}
	return out
}
