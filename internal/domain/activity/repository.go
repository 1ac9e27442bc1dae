package activity

import "context"

type Repository interface {
	Append(ctx context.Context, e Entry) error
	// Recent devuelve las últimas entradas, más nuevas primero.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
