package patients

import "context"

// Repository es el puerto hacia el servicio de pacientes.
type Repository interface {
	List(ctx context.Context, search string) ([]Patient, error)
	GetByID(ctx context.Context, id string) (Patient, error)
	Create(ctx context.Context, in Input) (Patient, error)
	Update(ctx context.Context, id string, in Input) (Patient, error)

	// Merge reasigna los registros de sourceID a targetID y elimina el origen.
	Merge(ctx context.Context, sourceID, targetID string) error
}
