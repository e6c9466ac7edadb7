package book

import "context"

// Service is the business logic contract for books. Reads and Register pass
// through to the repository; Update enforces the publish latch.
type Service interface {
	GetByAuthor(ctx context.Context, authorID int64) ([]Book, error)
	GetByKeyword(ctx context.Context, keyword string) ([]Book, error)
	Register(ctx context.Context, b *Book) (*Book, error)

	// Update reads the currently stored book first; when the stored
	// published flag is true and the request's is false, it fails with
	// InvalidOperation and never reaches the repository update. The check
	// uses persisted state only, never the client's view of it.
	Update(ctx context.Context, b *Book) (*Book, error)
}
