package book

import "context"

// Repository is the data access contract for books. Implementations are the
// sole classification boundary for persistence failures: every error returned
// is an *apierror.Error of kind TemporaryUnavailable or DbAccess, never a raw
// driver error. A read or update that matches no row is DbAccess, not a
// distinct not-found condition.
type Repository interface {
	// GetByAuthor returns the author's books ordered by book id ascending,
	// each with its author id list in junction insertion order.
	GetByAuthor(ctx context.Context, authorID int64) ([]Book, error)

	// GetByKeyword returns books whose title contains the keyword, ordered
	// by book id ascending.
	GetByKeyword(ctx context.Context, keyword string) ([]Book, error)

	// Get returns a single book by id.
	Get(ctx context.Context, bookID int64) (*Book, error)

	// Register allocates a new id from the book sequence, inserts the book
	// row and one junction row per author id in the order given, all in one
	// transaction. The returned author id list echoes the insert results.
	Register(ctx context.Context, b *Book) (*Book, error)

	// Update updates the book row, then replaces the whole association set:
	// all junction rows for the book are deleted and re-inserted in the
	// order given, inside one transaction.
	Update(ctx context.Context, b *Book) (*Book, error)
}
