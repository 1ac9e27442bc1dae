// Package resource implementa el store genérico que usa cada vista: lista en
// memoria, flag de carga y último error, reconciliados solo con respuestas
// confirmadas por el backend.
package resource

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"riavet-admin/internal/platform/httpclient"
	"riavet-admin/internal/platform/logger"
)

// ErrStale: la respuesta llegó cuando la vista o la llamada ya habían terminado.
var ErrStale = errors.New("stale response discarded")

type InsertPosition int

const (
	Prepend InsertPosition = iota
	Append
)

// Recorder recibe las mutaciones confirmadas (journal de actividad).
type Recorder interface {
	Record(ctx context.Context, entity, action, entityID string) error
}

// Op describe una mutación: acción para el journal y mensaje por defecto.
type Op struct {
	Action  string
	Message string
}

// Messages por defecto cuando el backend no manda uno propio.
type Messages struct {
	Fetch  string
	Get    string
	Create string
	Update string
	Delete string
}

type Config[T any] struct {
	Entity   string
	ID       func(T) string
	Insert   InsertPosition
	Messages Messages
	Recorder Recorder
	Log      logger.Logger
}

type Store[T any] struct {
	view context.Context
	cfg  Config[T]

	mu       sync.Mutex
	items    []T
	inflight int
	err      string
}

// New crea un store atado a la vida de la vista (view). Cuando view termina,
// las llamadas en curso se cancelan y sus respuestas se descartan.
func New[T any](view context.Context, cfg Config[T]) *Store[T] {
	if view == nil {
		view = context.Background()
	}
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	return &Store[T]{view: view, cfg: cfg}
}

func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Fetch reemplaza la lista con el resultado del backend.
func (s *Store[T]) Fetch(ctx context.Context, call func(context.Context) ([]T, error)) ([]T, error) {
	ctx, done := s.begin(ctx)
	defer done()

	items, err := call(ctx)
	err = s.finish(ctx, err, s.cfg.Messages.Fetch, func() {
		s.items = slices.Clone(items)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get trae un item sin tocar la lista.
func (s *Store[T]) Get(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	ctx, done := s.begin(ctx)
	defer done()

	item, err := call(ctx)
	if err := s.finish(ctx, err, s.cfg.Messages.Get, func() {}); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Create inserta la copia del servidor al principio o al final según Config.Insert.
func (s *Store[T]) Create(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	ctx, done := s.begin(ctx)
	defer done()

	item, err := call(ctx)
	err = s.finish(ctx, err, s.cfg.Messages.Create, func() {
		if s.cfg.Insert == Append {
			s.items = append(s.items, item)
			return
		}
		s.items = append([]T{item}, s.items...)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	s.record(ctx, "create", s.cfg.ID(item))
	return item, nil
}

func (s *Store[T]) Update(ctx context.Context, id string, call func(context.Context) (T, error)) (T, error) {
	return s.Replace(ctx, Op{Action: "update", Message: s.cfg.Messages.Update}, id, call)
}

// Replace aplica una mutación que devuelve la copia actualizada del servidor
// (update, cancel, deactivate, cambio de estado) y la reemplaza en su lugar.
func (s *Store[T]) Replace(ctx context.Context, op Op, id string, call func(context.Context) (T, error)) (T, error) {
	ctx, done := s.begin(ctx)
	defer done()

	item, err := call(ctx)
	err = s.finish(ctx, err, op.Message, func() {
		if i := s.indexLocked(id); i >= 0 {
			s.items[i] = item
		}
	})
	if err != nil {
		var zero T
		return zero, err
	}
	s.record(ctx, op.Action, id)
	return item, nil
}

func (s *Store[T]) Delete(ctx context.Context, id string, call func(context.Context) error) error {
	return s.Remove(ctx, Op{Action: "delete", Message: s.cfg.Messages.Delete}, id, call)
}

// Remove saca el item de la lista cuando el backend confirma (delete, merge).
func (s *Store[T]) Remove(ctx context.Context, op Op, id string, call func(context.Context) error) error {
	ctx, done := s.begin(ctx)
	defer done()

	err := s.finish(ctx, call(ctx), op.Message, func() {
		if i := s.indexLocked(id); i >= 0 {
			s.items = slices.Delete(s.items, i, i+1)
		}
	})
	if err != nil {
		return err
	}
	s.record(ctx, op.Action, id)
	return nil
}

// begin marca la llamada en curso y devuelve un contexto que se cancela
// también cuando termina la vista.
func (s *Store[T]) begin(ctx context.Context) (context.Context, func()) {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()

	ctx, cancel := context.WithCancelCause(ctx)
	stop := context.AfterFunc(s.view, func() {
		cancel(context.Cause(s.view))
	})
	return ctx, func() {
		stop()
		cancel(nil)
	}
}

// finish descuenta la llamada y aplica el resultado, salvo que sea viejo.
func (s *Store[T]) finish(ctx context.Context, err error, fallback string, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if cause := staleCause(s.view, ctx); cause != nil {
		s.cfg.Log.Debug("discarding stale response", map[string]any{"entity": s.cfg.Entity, "cause": cause.Error()})
		return fmt.Errorf("%s: %w: %w", s.cfg.Entity, ErrStale, cause)
	}
	if err != nil {
		s.err = Message(err, fallback)
		return err
	}
	apply()
	return nil
}

func (s *Store[T]) record(ctx context.Context, action, id string) {
	if s.cfg.Recorder == nil {
		return
	}
	// El journal no debe depender de la vida de la vista.
	if err := s.cfg.Recorder.Record(context.WithoutCancel(ctx), s.cfg.Entity, action, id); err != nil {
		s.cfg.Log.Warn("activity record failed", map[string]any{
			"entity": s.cfg.Entity, "action": action, "entity_id": id, "error": err.Error(),
		})
	}
}

func (s *Store[T]) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(it T) bool { return s.cfg.ID(it) == id })
}

func staleCause(view, call context.Context) error {
	if view.Err() != nil {
		return context.Cause(view)
	}
	if call.Err() != nil {
		return context.Cause(call)
	}
	return nil
}

// Message arma el texto para el usuario: mensaje del backend si lo hay,
// si no el default de la operación.
func Message(err error, fallback string) string {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback == "" {
		return err.Error()
	}
	return fallback
}
