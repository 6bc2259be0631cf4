package mongo

import (
	"time"

	"app/core/profile/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// profileDoc is the stored shape of a profile. Optional attributes carry
// omitempty so an unset field is genuinely absent from the document, which
// keeps the active-listing filter an exact match on true.
type profileDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"userId"`

	Name                 string     `bson:"name,omitempty"`
	Surname              string     `bson:"surname,omitempty"`
	Gender               string     `bson:"gender,omitempty"`
	DateOfBirth          *time.Time `bson:"dateOfBirth,omitempty"`
	ProfilePicture       string     `bson:"profilePicture,omitempty"`
	ContinentDestination string     `bson:"continentDestination,omitempty"`
	CountryDestination   string     `bson:"countryDestination,omitempty"`
	TravelDescription    string     `bson:"travelDescription,omitempty"`
	AgePreference        []int      `bson:"agePreference,omitempty"`
	GenderPreference     string     `bson:"genderPreference,omitempty"`
	Active               *bool      `bson:"active,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func parseID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

func (d *profileDoc) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:                   d.ID.Hex(),
		UserID:               d.UserID,
		Name:                 d.Name,
		Surname:              d.Surname,
		Gender:               d.Gender,
		DateOfBirth:          d.DateOfBirth,
		ProfilePicture:       d.ProfilePicture,
		ContinentDestination: d.ContinentDestination,
		CountryDestination:   d.CountryDestination,
		TravelDescription:    d.TravelDescription,
		AgePreference:        d.AgePreference,
		GenderPreference:     d.GenderPreference,
		Active:               d.Active,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func docFromNew(np *domain.NewProfile, now time.Time) *profileDoc {
	return &profileDoc{
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
}

func docFromDomain(p *domain.Profile) *profileDoc {
	return &profileDoc{
		UserID:               p.UserID,
		Name:                 p.Name,
		Surname:              p.Surname,
		Gender:               p.Gender,
		DateOfBirth:          p.DateOfBirth,
		ProfilePicture:       p.ProfilePicture,
		ContinentDestination: p.ContinentDestination,
		CountryDestination:   p.CountryDestination,
		TravelDescription:    p.TravelDescription,
		AgePreference:        p.AgePreference,
		GenderPreference:     p.GenderPreference,
		Active:               p.Active,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
