package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"riavet-admin/internal/domain/activity"
)

type activityRepo struct {
	mu      sync.RWMutex
	entries []activity.Entry
	max     int
}

// NewActivityRepo guarda hasta max entradas (las más viejas se descartan).
// max <= 0 usa activity.MaxLimit.
func NewActivityRepo(max int) activity.Repository {
	if max <= 0 {
		max = activity.MaxLimit
	}
	return &activityRepo{max: max}
}

func (r *activityRepo) Append(ctx context.Context, e activity.Entry) error {
	if e.ID == "" {
		return errors.New("entry id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	if over := len(r.entries) - r.max; over > 0 {
		r.entries = r.entries[over:]
	}
	return nil
}

func (r *activityRepo) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Entry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}

	// Más reciente primero; a igual instante queda el último agregado.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.After(out[j].At)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
