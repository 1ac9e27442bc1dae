package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
	"riavet-admin/internal/platform/web"
)

var messages = resource.Messages{
	Fetch:  "Error al cargar las facturas",
	Get:    "Error al cargar la factura",
	Create: "Error al crear la factura",
	Update: "Error al actualizar la factura",
	Delete: "Error al eliminar la factura",
}

var statusOp = resource.Op{Action: "status", Message: "Error al actualizar la factura"}

// Store de facturas. Las nuevas van al final.
type Store struct {
	repo Repository
	res  *resource.Store[Invoice]
}

func NewStore(view context.Context, repo Repository, rec resource.Recorder, log logger.Logger) *Store {
	return &Store{
		repo: repo,
		res: resource.New(view, resource.Config[Invoice]{
			Entity:   "invoice",
			ID:       func(inv Invoice) string { return inv.ID },
			Insert:   resource.Append,
			Messages: messages,
			Recorder: rec,
			Log:      log,
		}),
	}
}

func (s *Store) Items() []Invoice { return s.res.Items() }
func (s *Store) Loading() bool    { return s.res.Loading() }
func (s *Store) Err() string      { return s.res.Err() }

func (s *Store) Fetch(ctx context.Context, q Query) ([]Invoice, error) {
	q.PatientID = strings.TrimSpace(q.PatientID)
	return s.res.Fetch(ctx, func(ctx context.Context) ([]Invoice, error) {
		return s.repo.List(ctx, q)
	})
}

func (s *Store) Get(ctx context.Context, id string) (Invoice, error) {
	return s.res.Get(ctx, func(ctx context.Context) (Invoice, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Store) Create(ctx context.Context, in Input) (Invoice, error) {
	return s.res.Create(ctx, func(ctx context.Context) (Invoice, error) {
		return s.repo.Create(ctx, in)
	})
}

// Update edita datos de una factura en borrador; el estado no cambia.
func (s *Store) Update(ctx context.Context, id string, in Input) (Invoice, error) {
	current, err := s.current(ctx, id)
	if err != nil {
		return Invoice{}, err
	}
	if !current.Status.Editable() {
		return Invoice{}, fmt.Errorf("invoice %s (%s): %w", id, current.Status, ErrEditNotAllowed)
	}
	return s.res.Update(ctx, id, func(ctx context.Context) (Invoice, error) {
		return s.repo.Update(ctx, id, UpdateInput{PatientID: in.PatientID, Total: in.Total, Items: in.Items})
	})
}

// ChangeStatus valida la transición y manda el PUT completo con el nuevo
// estado. El backend no valida transiciones.
func (s *Store) ChangeStatus(ctx context.Context, id string, to Status) (Invoice, error) {
	current, err := s.current(ctx, id)
	if err != nil {
		return Invoice{}, err
	}
	if !CanTransition(current.Status, to) {
		return Invoice{}, fmt.Errorf("invoice %s %s -> %s: %w", id, current.Status, to, ErrInvalidTransition)
	}
	in := UpdateInput{
		PatientID: current.PatientID,
		Total:     current.Total,
		Items:     current.Items,
		Status:    to,
	}
	return s.res.Replace(ctx, statusOp, id, func(ctx context.Context) (Invoice, error) {
		return s.repo.Update(ctx, id, in)
	})
}

// Delete solo procede con facturas en DRAFT o SENT.
func (s *Store) Delete(ctx context.Context, id string) error {
	current, err := s.current(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.Deletable() {
		return fmt.Errorf("invoice %s (%s): %w", id, current.Status, ErrDeleteNotAllowed)
	}
	return s.res.Delete(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// current usa la copia en caché si la hay; si no, la pide al backend.
func (s *Store) current(ctx context.Context, id string) (Invoice, error) {
	if inv, ok := s.res.Find(id); ok {
		return inv, nil
	}
	return s.Get(ctx, id)
}

// ConflictMessage es el texto para el usuario de los rechazos locales.
func ConflictMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return "La factura no admite ese cambio de estado"
	case errors.Is(err, ErrDeleteNotAllowed):
		return "Solo se pueden eliminar facturas en borrador o enviadas"
	case errors.Is(err, ErrEditNotAllowed):
		return "Solo se pueden editar facturas en borrador"
	}
	return ""
}

// Filter aplica estado (vacío o ALL = todas) y búsqueda por id, paciente o items.
func Filter(items []Invoice, status, search string) []Invoice {
	status = strings.ToUpper(strings.TrimSpace(status))
	return web.Filter(items, func(inv Invoice) bool {
		if status != "" && status != "ALL" && string(inv.Status) != status {
			return false
		}
		return web.Matches(search, inv.ID, inv.PatientID, inv.Items)
	})
}

func Rows(items []Invoice) []Row {
	out := make([]Row, 0, len(items))
	for _, inv := range items {
		out = append(out, Row{Invoice: inv, Actions: Actions(inv.Status)})
	}
	return out
}

func ComputeStats(items []Invoice) Stats {
	st := Stats{Total: len(items)}
	for _, inv := range items {
		switch inv.Status {
		case StatusDraft:
			st.Draft++
		case StatusSent:
			st.Sent++
		case StatusPaid:
			st.Paid++
			st.PaidAmount += inv.Total
		}
	}
	return st
}
