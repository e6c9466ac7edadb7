package book

import "time"

// Book is the domain entity. AuthorIDList carries the associated author ids
// in junction insertion order; on writes it echoes what was actually
// persisted, not the request.
type Book struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Price        int64     `json:"price" db:"price"`
	IsPublished  bool      `json:"isPublished" db:"is_published"`
	AuthorIDList []int64   `json:"authorIdList"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}
