package owners

import (
	"context"
	"strings"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
	"riavet-admin/internal/platform/web"
)

var messages = resource.Messages{
	Fetch:  "Error al cargar propietarios",
	Get:    "Error al cargar propietario",
	Create: "Error al crear propietario",
	Update: "Error al actualizar propietario",
	Delete: "Error al eliminar propietario",
}

type Store struct {
	repo Repository
	res  *resource.Store[Owner]
}

func NewStore(view context.Context, repo Repository, rec resource.Recorder, log logger.Logger) *Store {
	return &Store{
		repo: repo,
		res: resource.New(view, resource.Config[Owner]{
			Entity:   "owner",
			ID:       func(o Owner) string { return o.ID },
			Insert:   resource.Prepend,
			Messages: messages,
			Recorder: rec,
			Log:      log,
		}),
	}
}

func (s *Store) Items() []Owner { return s.res.Items() }
func (s *Store) Loading() bool  { return s.res.Loading() }
func (s *Store) Err() string    { return s.res.Err() }

func (s *Store) Fetch(ctx context.Context, search string) ([]Owner, error) {
	search = strings.TrimSpace(search)
	return s.res.Fetch(ctx, func(ctx context.Context) ([]Owner, error) {
		return s.repo.List(ctx, search)
	})
}

func (s *Store) Get(ctx context.Context, id string) (Owner, error) {
	return s.res.Get(ctx, func(ctx context.Context) (Owner, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Store) Create(ctx context.Context, in Input) (Owner, error) {
	return s.res.Create(ctx, func(ctx context.Context) (Owner, error) {
		return s.repo.Create(ctx, in)
	})
}

func (s *Store) Update(ctx context.Context, id string, in Input) (Owner, error) {
	return s.res.Update(ctx, id, func(ctx context.Context) (Owner, error) {
		return s.repo.Update(ctx, id, in)
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// Search filtra localmente por nombre, email o teléfono.
func Search(items []Owner, term string) []Owner {
	return web.Filter(items, func(o Owner) bool {
		return web.Matches(term, o.FullName, o.Email, o.Phone)
	})
}

func ComputeStats(items []Owner) Stats {
	st := Stats{Total: len(items)}
	for _, o := range items {
		if strings.TrimSpace(o.Email) != "" {
			st.WithEmail++
		}
		if strings.TrimSpace(o.Phone) != "" {
			st.WithPhone++
		}
	}
	return st
}
