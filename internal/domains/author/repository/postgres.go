package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookfinder-backend/internal/domains/author"
	"bookfinder-backend/internal/infrastructure/database"
	"bookfinder-backend/internal/shared/apierror"
)

const authorSequence = "author_id_seq"

// postgresRepository implements author.Repository with raw SQL over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
	ids  database.IDAllocator
}

func NewPostgresRepository(pool *pgxpool.Pool, ids database.IDAllocator) author.Repository {
	return &postgresRepository{
		pool: pool,
		ids:  ids,
	}
}

func (r *postgresRepository) Register(ctx context.Context, a *author.Author) (*author.Author, error) {
	newID, err := r.ids.Next(ctx, authorSequence)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgInsertFailed, err)
	}

	query := `
        INSERT INTO author (id, name, birth_date, created_at, updated_at)
        VALUES ($1, $2, $3, now(), now())
        RETURNING id, name, birth_date
    `

	var inserted author.Author
	var birthDate time.Time
	err = r.pool.QueryRow(ctx, query, newID, a.Name, a.BirthDate.Time).Scan(
		&inserted.ID,
		&inserted.Name,
		&birthDate,
	)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgInsertFailed, err)
	}

	inserted.BirthDate = author.DateOf(birthDate)
	return &inserted, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE author
        SET name = $1, birth_date = $2, updated_at = now()
        WHERE id = $3
        RETURNING id, name, birth_date
    `

	// An unknown id makes QueryRow report no rows, which classifies as
	// DbAccess like every other persistence failure.
	var updated author.Author
	var birthDate time.Time
	err := r.pool.QueryRow(ctx, query, a.Name, a.BirthDate.Time, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&birthDate,
	)
	if err != nil {
		return nil, apierror.ClassifyDB(apierror.MsgUpdateFailed, err)
	}

	updated.BirthDate = author.DateOf(birthDate)
	return &updated, nil
}
