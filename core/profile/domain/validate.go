package domain

import (
	"strings"
	"unicode/utf8"
)

// Declared field constraints. These mirror the collection schema and are
// checked before any write reaches the store, so a violation never results
// in a partial write.
const (
	MaxFieldLen       = 256
	MaxDescriptionLen = 1000
)

func validateNewProfile(np *NewProfile) error {
	if strings.TrimSpace(np.UserID) == "" {
		return &ValidationError{Field: "userId", Reason: "subject identifier is required"}
	}
	return validateFields(
		lengthCheck{"userId", np.UserID, MaxFieldLen},
		lengthCheck{"name", np.Name, MaxFieldLen},
		lengthCheck{"surname", np.Surname, MaxFieldLen},
		lengthCheck{"gender", np.Gender, MaxFieldLen},
		lengthCheck{"profilePicture", np.ProfilePicture, MaxFieldLen},
		lengthCheck{"continentDestination", np.ContinentDestination, MaxFieldLen},
		lengthCheck{"countryDestination", np.CountryDestination, MaxFieldLen},
		lengthCheck{"travelDescription", np.TravelDescription, MaxDescriptionLen},
		lengthCheck{"genderPreference", np.GenderPreference, MaxFieldLen},
	)
}

func validateProfile(p *Profile) error {
	if strings.TrimSpace(p.UserID) == "" {
		return &ValidationError{Field: "userId", Reason: "subject identifier is required"}
	}
	return validateFields(
		lengthCheck{"name", p.Name, MaxFieldLen},
		lengthCheck{"surname", p.Surname, MaxFieldLen},
		lengthCheck{"gender", p.Gender, MaxFieldLen},
		lengthCheck{"profilePicture", p.ProfilePicture, MaxFieldLen},
		lengthCheck{"continentDestination", p.ContinentDestination, MaxFieldLen},
		lengthCheck{"countryDestination", p.CountryDestination, MaxFieldLen},
		lengthCheck{"travelDescription", p.TravelDescription, MaxDescriptionLen},
		lengthCheck{"genderPreference", p.GenderPreference, MaxFieldLen},
	)
}

type lengthCheck struct {
	field string
	value string
	max   int
}

func validateFields(checks ...lengthCheck) error {
	for _, c := range checks {
		// limits are in characters, not bytes, so multibyte input is not
		// penalized; this matches how maxLength counts in the API schema
		if utf8.RuneCountInString(c.value) > c.max {
			return &ValidationError{Field: c.field, Reason: "value exceeds maximum length"}
		}
	}
	return nil
}
