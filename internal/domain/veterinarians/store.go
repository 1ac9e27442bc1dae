package veterinarians

import (
	"context"
	"strings"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
	"riavet-admin/internal/platform/web"
)

var messages = resource.Messages{
	Fetch:  "Error al cargar los veterinarios",
	Get:    "Error al cargar el veterinario",
	Create: "Error al crear el veterinario",
	Update: "Error al actualizar el veterinario",
	Delete: "Error al eliminar el veterinario",
}

var deactivateOp = resource.Op{Action: "deactivate", Message: "Error al desactivar el veterinario"}

// Store de veterinarios. Los nuevos van al final.
type Store struct {
	repo Repository
	res  *resource.Store[Veterinarian]
}

func NewStore(view context.Context, repo Repository, rec resource.Recorder, log logger.Logger) *Store {
	return &Store{
		repo: repo,
		res: resource.New(view, resource.Config[Veterinarian]{
			Entity:   "veterinarian",
			ID:       func(v Veterinarian) string { return v.ID },
			Insert:   resource.Append,
			Messages: messages,
			Recorder: rec,
			Log:      log,
		}),
	}
}

func (s *Store) Items() []Veterinarian { return s.res.Items() }
func (s *Store) Loading() bool         { return s.res.Loading() }
func (s *Store) Err() string           { return s.res.Err() }

func (s *Store) Fetch(ctx context.Context, filter ActiveFilter) ([]Veterinarian, error) {
	return s.res.Fetch(ctx, func(ctx context.Context) ([]Veterinarian, error) {
		return s.repo.List(ctx, filter.OnlyActive())
	})
}

func (s *Store) Get(ctx context.Context, id string) (Veterinarian, error) {
	return s.res.Get(ctx, func(ctx context.Context) (Veterinarian, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Store) GetByEmail(ctx context.Context, email string) (Veterinarian, error) {
	email = strings.TrimSpace(email)
	return s.res.Get(ctx, func(ctx context.Context) (Veterinarian, error) {
		return s.repo.GetByEmail(ctx, email)
	})
}

func (s *Store) Create(ctx context.Context, in Input) (Veterinarian, error) {
	return s.res.Create(ctx, func(ctx context.Context) (Veterinarian, error) {
		return s.repo.Create(ctx, in)
	})
}

func (s *Store) Update(ctx context.Context, id string, in Input) (Veterinarian, error) {
	return s.res.Update(ctx, id, func(ctx context.Context) (Veterinarian, error) {
		return s.repo.Update(ctx, id, in)
	})
}

// Deactivate reemplaza el item con la copia inactiva que devuelve el servidor.
func (s *Store) Deactivate(ctx context.Context, id string) (Veterinarian, error) {
	return s.res.Replace(ctx, deactivateOp, id, func(ctx context.Context) (Veterinarian, error) {
		return s.repo.Deactivate(ctx, id)
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// ActiveOptions: solo los activos son seleccionables en una cita.
func (s *Store) ActiveOptions() []Option {
	out := []Option{}
	for _, v := range s.res.Items() {
		if !v.Active {
			continue
		}
		label := v.DisplayName()
		if v.Specialization != "" {
			label += " - " + v.Specialization
		}
		out = append(out, Option{ID: v.ID, Label: label})
	}
	return out
}

func Search(items []Veterinarian, term string) []Veterinarian {
	return web.Filter(items, func(v Veterinarian) bool {
		return web.Matches(term, v.FirstName, v.LastName, v.Email, v.LicenseNumber, v.Specialization)
	})
}

func ComputeStats(items []Veterinarian) Stats {
	st := Stats{Total: len(items)}
	for _, v := range items {
		if v.Active {
			st.Active++
		} else {
			st.Inactive++
		}
	}
	return st
}
