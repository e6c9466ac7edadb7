package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BookRequest is the body of POST /book and PUT /book. The id is ignored on
// registration and required on update.
type BookRequest struct {
	ID           *int64  `json:"id"`
	Title        string  `json:"title"`
	Price        *int64  `json:"price"`
	IsPublished  *bool   `json:"isPublished"`
	AuthorIDList []int64 `json:"authorIdList"`
}

// Validate checks the field rules shared by registration and update.
func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title must not be blank"),
		),
		validation.Field(&r.Price,
			validation.NotNil.Error("price must not be null"),
			validation.Min(int64(0)).Error("price must not be negative"),
		),
		validation.Field(&r.IsPublished,
			validation.NotNil.Error("isPublished must not be null"),
		),
		validation.Field(&r.AuthorIDList,
			validation.Required.Error("authorIdList must not be empty"),
			validation.Length(1, 0).Error("authorIdList must contain at least one author"),
		),
	)
}

// ValidateUpdate additionally requires the id.
func (r BookRequest) ValidateUpdate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.ID,
			validation.NotNil.Error("id must not be null"),
		),
	); err != nil {
		return err
	}
	return r.Validate()
}

// ToModel converts the request to the domain entity.
func (r BookRequest) ToModel() *Book {
	b := &Book{
		Title:        r.Title,
		AuthorIDList: r.AuthorIDList,
	}
	if r.ID != nil {
		b.ID = *r.ID
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.IsPublished != nil {
		b.IsPublished = *r.IsPublished
	}
	return b
}
