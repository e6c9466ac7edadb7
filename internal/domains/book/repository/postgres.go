package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookfinder-backend/internal/domains/book"
	"bookfinder-backend/internal/infrastructure/database"
	"bookfinder-backend/internal/shared/apierror"
	pkgdb "bookfinder-backend/pkg/database"
)

const bookSequence = "book_id_seq"

// authorIDsSubquery returns a book's author ids ordered by junction row id,
// which is insertion order.
const authorIDsSubquery = `
    ARRAY(
        SELECT ab.author_id
        FROM author_book ab
        WHERE ab.book_id = b.id
        ORDER BY ab.id
    )`

// postgresRepository implements book.Repository with raw SQL over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
	ids  database.IDAllocator
}

func NewPostgresRepository(pool *pgxpool.Pool, ids database.IDAllocator) book.Repository {
	return &postgresRepository{
		pool: pool,
		ids:  ids,
	}
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID int64) ([]book.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.is_published, ` + authorIDsSubquery + `
        FROM author a
        JOIN author_book ab ON a.id = ab.author_id
        JOIN book b ON ab.book_id = b.id
        WHERE a.id = $1
        ORDER BY b.id
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgSelectFailed, err)
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgSelectFailed, err)
	}

	return books, nil
}

func (r *postgresRepository) GetByKeyword(ctx context.Context, keyword string) ([]book.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.is_published, ` + authorIDsSubquery + `
        FROM book b
        WHERE b.title ILIKE '%' || $1 || '%'
        ORDER BY b.id
    `

	rows, err := r.pool.Query(ctx, query, keyword)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgSelectFailed, err)
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgSelectFailed, err)
	}

	return books, nil
}

func (r *postgresRepository) Get(ctx context.Context, bookID int64) (*book.Book, error) {
	query := `
        SELECT b.id, b.title, b.price, b.is_published, ` + authorIDsSubquery + `
        FROM book b
        WHERE b.id = $1
    `

	// An unknown id reports no rows, which classifies as DbAccess like
	// every other persistence failure.
	var b book.Book
	err := r.pool.QueryRow(ctx, query, bookID).Scan(
		&b.ID,
		&b.Title,
		&b.Price,
		&b.IsPublished,
		&b.AuthorIDList,
	)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgSelectFailed, err)
	}

	return &b, nil
}

func (r *postgresRepository) Register(ctx context.Context, b *book.Book) (*book.Book, error) {
	newID, err := r.ids.Next(ctx, bookSequence)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgInsertFailed, err)
	}

	registered, err := pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		query := `
            INSERT INTO book (id, title, price, is_published, created_at, updated_at)
            VALUES ($1, $2, $3, $4, now(), now())
            RETURNING id, title, price, is_published
        `

		var inserted book.Book
		err := tx.QueryRow(ctx, query, newID, b.Title, b.Price, b.IsPublished).Scan(
			&inserted.ID,
			&inserted.Title,
			&inserted.Price,
			&inserted.IsPublished,
		)
		if err != nil {
			return nil, apierror.ClassifyDB(apierror.MsgInsertFailed, err)
		}

		inserted.AuthorIDList, err = insertJunctionRows(ctx, tx, inserted.ID, b.AuthorIDList)
		if err != nil {
			return nil, err
		}

		return &inserted, nil
	})
	if err != nil {
		return nil, classified(err, apierror.MsgInsertFailed)
	}

	return registered, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	// One transaction covers the row update and the full replacement of the
	// association set, so concurrent readers never observe a book without
	// its junction rows.
	updated, err := pkgdb.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		query := `
            UPDATE book
            SET title = $1, price = $2, is_published = $3, updated_at = now()
            WHERE id = $4
            RETURNING id, title, price, is_published
        `

		var updated book.Book
		err := tx.QueryRow(ctx, query, b.Title, b.Price, b.IsPublished, b.ID).Scan(
			&updated.ID,
			&updated.Title,
			&updated.Price,
			&updated.IsPublished,
		)
		if err != nil {
			return nil, apierror.ClassifyDB(apierror.MsgUpdateFailed, err)
		}

		// Associations are replaced wholesale, not diffed.
		if _, err := tx.Exec(ctx, `DELETE FROM author_book WHERE book_id = $1`, b.ID); err != nil {
			return nil, apierror.ClassifyDB(apierror.MsgDeleteFailed, err)
		}

		updated.AuthorIDList, err = insertJunctionRows(ctx, tx, b.ID, b.AuthorIDList)
		if err != nil {
			return nil, err
		}

		return &updated, nil
	})
	if err != nil {
		return nil, classified(err, apierror.MsgUpdateFailed)
	}

	return updated, nil
}

// insertJunctionRows inserts one author_book row per author id, in the order
// given, and returns the author ids echoed by the inserts.
func insertJunctionRows(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) ([]int64, error) {
	query := `
        INSERT INTO author_book (author_id, book_id, created_at, updated_at)
        VALUES ($1, $2, now(), now())
        RETURNING author_id
    `

	inserted := make([]int64, 0, len(authorIDs))
	for _, authorID := range authorIDs {
		var returnedID int64
		if err := tx.QueryRow(ctx, query, authorID, bookID).Scan(&returnedID); err != nil {
			return nil, apierror.ClassifyDB(apierror.MsgInsertFailed, err)
		}
		inserted = append(inserted, returnedID)
	}

	return inserted, nil
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.IsPublished, &b.AuthorIDList); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// classified keeps errors already classified inside the transaction and
// classifies begin/commit failures, which surface outside it.
func classified(err error, message string) *apierror.Error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return apierror.ClassifyDB(message, err)
}
