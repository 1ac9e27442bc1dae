package patients

import (
	"context"
	"strings"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
)

var messages = resource.Messages{
	Fetch:  "Error al cargar los pacientes",
	Get:    "Error al cargar el paciente",
	Create: "Error al crear el paciente",
	Update: "Error al actualizar el paciente",
}

var mergeOp = resource.Op{Action: "merge", Message: "Error al fusionar pacientes"}

// Store es el estado de pacientes de una vista. Los nuevos van al principio.
type Store struct {
	repo Repository
	res  *resource.Store[Patient]
}

func NewStore(view context.Context, repo Repository, rec resource.Recorder, log logger.Logger) *Store {
	return &Store{
		repo: repo,
		res: resource.New(view, resource.Config[Patient]{
			Entity:   "patient",
			ID:       func(p Patient) string { return p.ID },
			Insert:   resource.Prepend,
			Messages: messages,
			Recorder: rec,
			Log:      log,
		}),
	}
}

func (s *Store) Items() []Patient { return s.res.Items() }
func (s *Store) Loading() bool    { return s.res.Loading() }
func (s *Store) Err() string      { return s.res.Err() }

func (s *Store) Find(id string) (Patient, bool) { return s.res.Find(id) }

func (s *Store) Fetch(ctx context.Context, search string) ([]Patient, error) {
	search = strings.TrimSpace(search)
	return s.res.Fetch(ctx, func(ctx context.Context) ([]Patient, error) {
		return s.repo.List(ctx, search)
	})
}

func (s *Store) Get(ctx context.Context, id string) (Patient, error) {
	return s.res.Get(ctx, func(ctx context.Context) (Patient, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Store) Create(ctx context.Context, in Input) (Patient, error) {
	return s.res.Create(ctx, func(ctx context.Context) (Patient, error) {
		return s.repo.Create(ctx, in)
	})
}

func (s *Store) Update(ctx context.Context, id string, in Input) (Patient, error) {
	return s.res.Update(ctx, id, func(ctx context.Context) (Patient, error) {
		return s.repo.Update(ctx, id, in)
	})
}

// Merge saca el origen de la lista solo si el backend confirma.
// El efecto sobre el destino queda del lado del servidor.
func (s *Store) Merge(ctx context.Context, sourceID, targetID string) error {
	return s.res.Remove(ctx, mergeOp, sourceID, func(ctx context.Context) error {
		return s.repo.Merge(ctx, sourceID, targetID)
	})
}

func ComputeStats(items []Patient) Stats {
	st := Stats{Total: len(items)}
	for _, p := range items {
		switch {
		case strings.EqualFold(p.Species, "dog"):
			st.Dogs++
		case strings.EqualFold(p.Species, "cat"):
			st.Cats++
		default:
			st.Others++
		}
	}
	return st
}
