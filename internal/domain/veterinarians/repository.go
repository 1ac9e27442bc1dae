package veterinarians

import "context"

type Repository interface {
	// List: onlyActive nil trae todos.
	List(ctx context.Context, onlyActive *bool) ([]Veterinarian, error)
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	GetByEmail(ctx context.Context, email string) (Veterinarian, error)
	Create(ctx context.Context, in Input) (Veterinarian, error)
	Update(ctx context.Context, id string, in Input) (Veterinarian, error)
	Deactivate(ctx context.Context, id string) (Veterinarian, error)
	Delete(ctx context.Context, id string) error
}
