package author

import "context"

// Repository is the data access contract for authors. Implementations are
// the sole classification boundary for persistence failures: every error
// returned is an *apierror.Error of kind TemporaryUnavailable or DbAccess,
// never a raw driver error. An update that matches no row is DbAccess, not a
// distinct not-found condition.
type Repository interface {
	// Register allocates a new id from the author sequence, inserts and
	// returns the persisted row.
	Register(ctx context.Context, a *Author) (*Author, error)

	// Update updates name and birth date by id and returns the new row.
	Update(ctx context.Context, a *Author) (*Author, error)
}
