package author

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AuthorRequest is the body of POST /author and PUT /author. The id is
// ignored on registration (a new one is allocated from the sequence) and
// required on update.
type AuthorRequest struct {
	ID        *int64 `json:"id"`
	Name      string `json:"name"`
	BirthDate Date   `json:"birthDate"`
}

// Validate checks the field rules shared by registration and update.
func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name must not be blank"),
		),
		validation.Field(&r.BirthDate,
			validation.By(pastDate),
		),
	)
}

// ValidateUpdate additionally requires the id.
func (r AuthorRequest) ValidateUpdate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.NotNil.Error("id must not be null"),
		),
	); err != nil {
		return err
	}
	return r.Validate()
}

func pastDate(value interface{}) error {
	d, ok := value.(Date)
	if !ok {
		return errors.New("birthDate must be a date")
	}
	if d.IsZero() {
		return errors.New("birthDate must not be null")
	}
	if !d.Before(time.Now()) {
		return errors.New("birthDate must be a past date")
	}
	return nil
}

// ToModel converts the request to the domain entity. A nil id maps to zero,
// meaning "allocate".
func (r AuthorRequest) ToModel() *Author {
	a := &Author{
		Name:      r.Name,
		BirthDate: r.BirthDate,
	}
	if r.ID != nil {
		a.ID = *r.ID
	}
	return a
}
