package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"

	"bookfinder-backend/internal/domains/author"
	authorrepo "bookfinder-backend/internal/domains/author/repository"
	"bookfinder-backend/internal/domains/book"
	"bookfinder-backend/internal/domains/book/repository"
	"bookfinder-backend/internal/infrastructure/database"
	"bookfinder-backend/migrations"
)

var (
	ctx        = context.Background()
	pool       *pgxpool.Pool
	bookRepo   book.Repository
	authorRepo author.Repository
)

// TestMain connects to the database named by DATABASE_URL and applies the
// migrations. Without the variable the tests in this package skip.
func TestMain(m *testing.M) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	pool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalln(err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatalln(err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, migrateDSN(dsn))
	if err != nil {
		log.Fatalln(err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalln(err)
	}

	db := &database.PostgresDB{Pool: pool}
	ids := database.NewSequenceAllocator(db)
	bookRepo = repository.NewPostgresRepository(pool, ids)
	authorRepo = authorrepo.NewPostgresRepository(pool, ids)

	os.Exit(m.Run())
}

func migrateDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "postgresql://")
	dsn = strings.TrimPrefix(dsn, "postgres://")
	return "pgx5://" + dsn
}

func requireDB(t *testing.T) {
	t.Helper()
	if pool == nil {
		t.Skip("DATABASE_URL not set")
	}
}

func registerAuthor(t *testing.T, name string) *author.Author {
	t.Helper()

	registered, err := authorRepo.Register(ctx, &author.Author{
		Name:      name,
		BirthDate: author.NewDate(1949, time.January, 12),
	})
	require.NoError(t, err)
	return registered
}

func cleanup(t *testing.T, bookIDs, authorIDs []int64) {
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM author_book WHERE book_id = ANY($1)`, bookIDs)
		_, _ = pool.Exec(ctx, `DELETE FROM book WHERE id = ANY($1)`, bookIDs)
		_, _ = pool.Exec(ctx, `DELETE FROM author WHERE id = ANY($1)`, authorIDs)
	})
}

func uniqueTitle(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano())
}

func TestRegisterRoundTripsAssociationOrder(t *testing.T) {
	requireDB(t)

	a1 := registerAuthor(t, "First Author")
	a2 := registerAuthor(t, "Second Author")

	// The list is deliberately not in ascending id order; reads must return
	// it as given, not sorted.
	want := []int64{a2.ID, a1.ID}

	registered, err := bookRepo.Register(ctx, &book.Book{
		Title:        uniqueTitle("Sputnik Sweetheart"),
		Price:        1800,
		AuthorIDList: want,
	})
	require.NoError(t, err)
	cleanup(t, []int64{registered.ID}, []int64{a1.ID, a2.ID})

	assert.Equal(t, want, registered.AuthorIDList)

	got, err := bookRepo.Get(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.AuthorIDList)

	byAuthor, err := bookRepo.GetByAuthor(ctx, a1.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, want, byAuthor[0].AuthorIDList)
}

func TestUpdateReplacesAssociationSet(t *testing.T) {
	requireDB(t)

	a1 := registerAuthor(t, "First Author")
	a2 := registerAuthor(t, "Second Author")
	a3 := registerAuthor(t, "Third Author")

	registered, err := bookRepo.Register(ctx, &book.Book{
		Title:        uniqueTitle("After Dark"),
		Price:        1500,
		AuthorIDList: []int64{a1.ID, a2.ID},
	})
	require.NoError(t, err)
	cleanup(t, []int64{registered.ID}, []int64{a1.ID, a2.ID, a3.ID})

	// The whole set is replaced, in the new order.
	want := []int64{a3.ID, a2.ID}
	updated, err := bookRepo.Update(ctx, &book.Book{
		ID:           registered.ID,
		Title:        registered.Title,
		Price:        registered.Price,
		IsPublished:  true,
		AuthorIDList: want,
	})
	require.NoError(t, err)
	assert.Equal(t, want, updated.AuthorIDList)

	got, err := bookRepo.Get(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.AuthorIDList)
	assert.True(t, got.IsPublished)

	// The dropped author no longer reaches the book.
	byDropped, err := bookRepo.GetByAuthor(ctx, a1.ID)
	require.NoError(t, err)
	assert.Empty(t, byDropped)
}
