package service

import (
	"context"

	"bookfinder-backend/internal/domains/author"
)

// authorService implements author.Service. Both operations delegate straight
// to the repository.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Register(ctx context.Context, a *author.Author) (*author.Author, error) {
	return s.repo.Register(ctx, a)
}

func (s *authorService) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	return s.repo.Update(ctx, a)
}
