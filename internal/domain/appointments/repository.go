package appointments

import "context"

type Repository interface {
	// List: veterinarianID vacío trae todas.
	List(ctx context.Context, veterinarianID string) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	Create(ctx context.Context, in Input) (Appointment, error)
	Update(ctx context.Context, id string, in Input) (Appointment, error)
	Cancel(ctx context.Context, id string) (Appointment, error)
	Delete(ctx context.Context, id string) error
}
