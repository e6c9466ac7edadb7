package author

import "context"

// Service is the business logic contract for authors. Register and Update
// are pass-throughs to the repository; the author domain carries no
// additional invariant.
type Service interface {
	Register(ctx context.Context, a *Author) (*Author, error)
	Update(ctx context.Context, a *Author) (*Author, error)
}
