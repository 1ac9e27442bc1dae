package invoices

import "context"

type Repository interface {
	List(ctx context.Context, q Query) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, in Input) (Invoice, error)
	Update(ctx context.Context, id string, in UpdateInput) (Invoice, error)
	Delete(ctx context.Context, id string) error
}
