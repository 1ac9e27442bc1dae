package records

import "context"

type Repository interface {
	List(ctx context.Context, q Query) ([]ClinicalRecord, error)
	ListByVeterinarian(ctx context.Context, veterinarianID string) ([]ClinicalRecord, error)
	GetByID(ctx context.Context, id string) (ClinicalRecord, error)
	Create(ctx context.Context, in Input) (ClinicalRecord, error)
	Update(ctx context.Context, id string, in Input) (ClinicalRecord, error)
	Delete(ctx context.Context, id string) error
}
