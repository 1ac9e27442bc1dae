package appointments

import (
	"context"
	"strings"
	"time"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"
)

var messages = resource.Messages{
	Fetch:  "Error al cargar las citas",
	Get:    "Error al cargar la cita",
	Create: "Error al crear la cita",
	Update: "Error al actualizar la cita",
	Delete: "Error al eliminar la cita",
}

var cancelOp = resource.Op{Action: "cancel", Message: "Error al cancelar la cita"}

// Store de citas. Las nuevas van al final.
type Store struct {
	repo Repository
	res  *resource.Store[Appointment]
}

func NewStore(view context.Context, repo Repository, rec resource.Recorder, log logger.Logger) *Store {
	return &Store{
		repo: repo,
		res: resource.New(view, resource.Config[Appointment]{
			Entity:   "appointment",
			ID:       func(a Appointment) string { return a.ID },
			Insert:   resource.Append,
			Messages: messages,
			Recorder: rec,
			Log:      log,
		}),
	}
}

func (s *Store) Items() []Appointment { return s.res.Items() }
func (s *Store) Loading() bool        { return s.res.Loading() }
func (s *Store) Err() string          { return s.res.Err() }

func (s *Store) Fetch(ctx context.Context, veterinarianID string) ([]Appointment, error) {
	veterinarianID = strings.TrimSpace(veterinarianID)
	return s.res.Fetch(ctx, func(ctx context.Context) ([]Appointment, error) {
		return s.repo.List(ctx, veterinarianID)
	})
}

func (s *Store) Get(ctx context.Context, id string) (Appointment, error) {
	return s.res.Get(ctx, func(ctx context.Context) (Appointment, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Store) Create(ctx context.Context, in Input) (Appointment, error) {
	return s.res.Create(ctx, func(ctx context.Context) (Appointment, error) {
		return s.repo.Create(ctx, in)
	})
}

func (s *Store) Update(ctx context.Context, id string, in Input) (Appointment, error) {
	return s.res.Update(ctx, id, func(ctx context.Context) (Appointment, error) {
		return s.repo.Update(ctx, id, in)
	})
}

// Cancel reemplaza la cita con la copia cancelada del servidor.
func (s *Store) Cancel(ctx context.Context, id string) (Appointment, error) {
	return s.res.Replace(ctx, cancelOp, id, func(ctx context.Context) (Appointment, error) {
		return s.repo.Cancel(ctx, id)
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// Filter aplica estado (vacío o ALL = todos) y búsqueda por paciente o veterinario.
func Filter(items []Appointment, status, search string) []Appointment {
	status = strings.ToUpper(strings.TrimSpace(status))
	return web.Filter(items, func(a Appointment) bool {
		if status != "" && status != "ALL" && string(a.Status) != status {
			return false
		}
		vetName := ""
		if a.Veterinarian != nil {
			vetName = a.Veterinarian.DisplayName()
		}
		return web.Matches(search, a.PatientID, a.VeterinarianID, vetName)
	})
}

func ComputeStats(items []Appointment, now time.Time) Stats {
	st := Stats{Total: len(items)}
	y, m, d := now.In(time.Local).Date()
	for _, a := range items {
		switch a.Status {
		case StatusPending:
			st.Pending++
		case StatusConfirmed:
			st.Confirmed++
		}
		if t, ok := validation.ParseDateTime(a.ScheduledAt); ok {
			ay, am, ad := t.In(time.Local).Date()
			if ay == y && am == m && ad == d {
				st.Today++
			}
		}
	}
	return st
}
