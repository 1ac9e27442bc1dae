package records

import (
	"context"
	"strings"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
)

var messages = resource.Messages{
	Fetch:  "Error al cargar los registros",
	Get:    "Error al cargar el registro",
	Create: "Error al crear el registro",
	Update: "Error al actualizar el registro",
	Delete: "Error al eliminar el registro",
}

type Store struct {
	repo Repository
	res  *resource.Store[ClinicalRecord]
}

func NewStore(view context.Context, repo Repository, rec resource.Recorder, log logger.Logger) *Store {
	return &Store{
		repo: repo,
		res: resource.New(view, resource.Config[ClinicalRecord]{
			Entity:   "record",
			ID:       func(r ClinicalRecord) string { return r.ID },
			Insert:   resource.Prepend,
			Messages: messages,
			Recorder: rec,
			Log:      log,
		}),
	}
}

func (s *Store) Items() []ClinicalRecord { return s.res.Items() }
func (s *Store) Loading() bool           { return s.res.Loading() }
func (s *Store) Err() string             { return s.res.Err() }

func (s *Store) Fetch(ctx context.Context, q Query) ([]ClinicalRecord, error) {
	q.PatientID = strings.TrimSpace(q.PatientID)
	return s.res.Fetch(ctx, func(ctx context.Context) ([]ClinicalRecord, error) {
		return s.repo.List(ctx, q)
	})
}

// FetchByVeterinarian reemplaza la lista con los registros de un veterinario.
func (s *Store) FetchByVeterinarian(ctx context.Context, veterinarianID string) ([]ClinicalRecord, error) {
	return s.res.Fetch(ctx, func(ctx context.Context) ([]ClinicalRecord, error) {
		return s.repo.ListByVeterinarian(ctx, veterinarianID)
	})
}

func (s *Store) Get(ctx context.Context, id string) (ClinicalRecord, error) {
	return s.res.Get(ctx, func(ctx context.Context) (ClinicalRecord, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Store) Create(ctx context.Context, in Input) (ClinicalRecord, error) {
	return s.res.Create(ctx, func(ctx context.Context) (ClinicalRecord, error) {
		return s.repo.Create(ctx, in)
	})
}

func (s *Store) Update(ctx context.Context, id string, in Input) (ClinicalRecord, error) {
	return s.res.Update(ctx, id, func(ctx context.Context) (ClinicalRecord, error) {
		return s.repo.Update(ctx, id, in)
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func ComputeStats(items []ClinicalRecord) Stats {
	st := Stats{Total: len(items)}
	for _, r := range items {
		switch r.Status {
		case StatusPending:
			st.Pending++
		case StatusActive:
			st.Active++
		case StatusCompleted:
			st.Completed++
		case StatusCancelled:
			st.Cancelled++
		}
	}
	return st
}
