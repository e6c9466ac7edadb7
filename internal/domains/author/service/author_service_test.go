package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookfinder-backend/internal/domains/author"
	"bookfinder-backend/internal/shared/apierror"
)

type fakeRepository struct {
	registerCalls int
	updateCalls   int
	err           error
}

func (f *fakeRepository) Register(ctx context.Context, a *author.Author) (*author.Author, error) {
	f.registerCalls++
	if f.err != nil {
		return nil, f.err
	}
	a.ID = 1
	return a, nil
}

func (f *fakeRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	f.updateCalls++
	if f.err != nil {
		return nil, f.err
	}
	return a, nil
}

func TestRegisterPassesThrough(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewAuthorService(repo)

	registered, err := svc.Register(context.Background(), &author.Author{
		Name:      "Haruki Murakami",
		BirthDate: author.NewDate(1949, time.January, 12),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, 1, repo.registerCalls)
}

func TestUpdatePassesThroughErrors(t *testing.T) {
	repoErr := apierror.New(apierror.DbAccess, "")
	repo := &fakeRepository{err: repoErr}
	svc := NewAuthorService(repo)

	_, err := svc.Update(context.Background(), &author.Author{ID: 9, Name: "X"})

	assert.ErrorIs(t, err, repoErr)
	assert.Equal(t, 1, repo.updateCalls)
}
