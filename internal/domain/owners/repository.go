package owners

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Owner, error)
	GetByID(ctx context.Context, id string) (Owner, error)
	Create(ctx context.Context, in Input) (Owner, error)
	Update(ctx context.Context, id string, in Input) (Owner, error)

	// Delete es soft delete del lado del servicio.
	Delete(ctx context.Context, id string) error
}
