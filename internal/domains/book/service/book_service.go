package service

import (
	"context"

	"bookfinder-backend/internal/domains/book"
	"bookfinder-backend/internal/shared/apierror"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) GetByAuthor(ctx context.Context, authorID int64) ([]book.Book, error) {
	return s.repo.GetByAuthor(ctx, authorID)
}

func (s *bookService) GetByKeyword(ctx context.Context, keyword string) ([]book.Book, error) {
	return s.repo.GetByKeyword(ctx, keyword)
}

func (s *bookService) Register(ctx context.Context, b *book.Book) (*book.Book, error) {
	return s.repo.Register(ctx, b)
}

// Update enforces the publish latch: once a book is published it can never be
// unpublished through this path. The check reads the stored row first, so it
// judges persisted state and not whatever flag the client sent as "current".
// Nothing locks between the read and the write; a racing update can slip
// between them, which this design accepts.
func (s *bookService) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	current, err := s.repo.Get(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	if current.IsPublished && !b.IsPublished {
		return nil, apierror.New(apierror.InvalidOperation, apierror.MsgPublishFlag)
	}

	return s.repo.Update(ctx, b)
}
