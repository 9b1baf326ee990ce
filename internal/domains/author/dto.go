package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Minimum length for an author name on write paths. Inherited from the
// book-side name check so both mutations agree on what a name is.
const MinNameLength = 4

// EditAuthorRequest - PATCH /authors
// Locates the author by name and sets the birth year. Editing a name
// nobody has is a valid no-op, so existence is not validated here.
type EditAuthorRequest struct {
	Name      string `json:"name"`
	SetBornTo *int   `json:"set_born_to"`
}

func (r EditAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(MinNameLength, 0).Error("name is too short"),
		),
		// NotNil rather than Required: year 0 is a legal value and
		// Required would treat a pointer to zero as missing.
		validation.Field(&r.SetBornTo,
			validation.NotNil.Error("set_born_to is required"),
			validation.Min(0).Error("set_born_to must not be negative"),
		),
	)
}
