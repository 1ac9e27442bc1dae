package resource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"riavet-admin/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	ID   string
	Name string
}

type recorded struct {
	entity, action, id string
}

type fakeRecorder struct {
	mu   sync.Mutex
	got  []recorded
	fail bool
}

func (r *fakeRecorder) Record(_ context.Context, entity, action, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, recorded{entity, action, id})
	if r.fail {
		return errors.New("journal down")
	}
	return nil
}

func newStore(view context.Context, pos InsertPosition, rec Recorder) *Store[thing] {
	return New(view, Config[thing]{
		Entity: "thing",
		ID:     func(t thing) string { return t.ID },
		Insert: pos,
		Messages: Messages{
			Fetch:  "Error al cargar",
			Create: "Error al crear",
			Update: "Error al actualizar",
			Delete: "Error al eliminar",
		},
		Recorder: rec,
	})
}

func list(items ...thing) func(context.Context) ([]thing, error) {
	return func(context.Context) ([]thing, error) { return items, nil }
}

func one(t thing) func(context.Context) (thing, error) {
	return func(context.Context) (thing, error) { return t, nil }
}

func TestStore_CreatePosition(t *testing.T) {
	ctx := context.Background()

	pre := newStore(ctx, Prepend, nil)
	_, err := pre.Fetch(ctx, list(thing{ID: "1"}))
	require.NoError(t, err)
	_, err = pre.Create(ctx, one(thing{ID: "2"}))
	require.NoError(t, err)
	assert.Equal(t, []thing{{ID: "2"}, {ID: "1"}}, pre.Items())

	app := newStore(ctx, Append, nil)
	_, _ = app.Fetch(ctx, list(thing{ID: "1"}))
	_, _ = app.Create(ctx, one(thing{ID: "2"}))
	assert.Equal(t, []thing{{ID: "1"}, {ID: "2"}}, app.Items())
}

func TestStore_UpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s := newStore(ctx, Prepend, nil)
	_, _ = s.Fetch(ctx, list(thing{ID: "1", Name: "a"}, thing{ID: "2", Name: "b"}))

	got, err := s.Update(ctx, "2", one(thing{ID: "2", Name: "B"}))
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, []thing{{ID: "1", Name: "a"}, {ID: "2", Name: "B"}}, s.Items())
}

func TestStore_FailureKeepsItemsAndSetsMessage(t *testing.T) {
	ctx := context.Background()
	s := newStore(ctx, Prepend, nil)
	_, _ = s.Fetch(ctx, list(thing{ID: "1"}))

	apiErr := &httpclient.APIError{Status: 409, Message: "Ya existe"}
	_, err := s.Create(ctx, func(context.Context) (thing, error) { return thing{}, apiErr })
	require.ErrorIs(t, err, apiErr)
	assert.Equal(t, "Ya existe", s.Err())
	assert.Equal(t, []thing{{ID: "1"}}, s.Items())

	err = s.Delete(ctx, "1", func(context.Context) error {
		return &httpclient.NetworkError{Method: "DELETE", URL: "x", Err: errors.New("refused")}
	})
	require.Error(t, err)
	assert.Equal(t, "Error al eliminar", s.Err())
	assert.Equal(t, []thing{{ID: "1"}}, s.Items())

	// la siguiente llamada exitosa limpia el error
	_, err = s.Fetch(ctx, list(thing{ID: "1"}))
	require.NoError(t, err)
	assert.Empty(t, s.Err())
}

func TestStore_LoadingWhileInFlight(t *testing.T) {
	ctx := context.Background()
	s := newStore(ctx, Prepend, nil)

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Fetch(ctx, func(context.Context) ([]thing, error) {
			close(started)
			<-release
			return nil, errors.New("boom")
		})
	}()

	<-started
	assert.True(t, s.Loading())
	close(release)
	<-done
	assert.False(t, s.Loading(), "loading must reset regardless of outcome")
}

func TestStore_StaleResponseAfterViewEndsIsDiscarded(t *testing.T) {
	view, endView := context.WithCancel(context.Background())
	s := newStore(view, Prepend, nil)
	_, _ = s.Fetch(context.Background(), list(thing{ID: "1"}))

	_, err := s.Fetch(context.Background(), func(ctx context.Context) ([]thing, error) {
		endView()
		// el backend responde igual
		return []thing{{ID: "stale"}}, nil
	})

	require.ErrorIs(t, err, ErrStale)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []thing{{ID: "1"}}, s.Items())
	assert.Empty(t, s.Err())
	assert.False(t, s.Loading())
}

func TestStore_ViewEndCancelsCallContext(t *testing.T) {
	view, endView := context.WithCancel(context.Background())
	s := newStore(view, Prepend, nil)

	_, err := s.Create(context.Background(), func(ctx context.Context) (thing, error) {
		endView()
		select {
		case <-ctx.Done():
			return thing{}, ctx.Err()
		case <-time.After(time.Second):
			return thing{ID: "late"}, nil
		}
	})
	require.ErrorIs(t, err, ErrStale)
	assert.Empty(t, s.Items())
}

func TestStore_RecordsConfirmedMutationsOnly(t *testing.T) {
	ctx := context.Background()
	rec := &fakeRecorder{}
	s := newStore(ctx, Append, rec)

	_, _ = s.Create(ctx, one(thing{ID: "1"}))
	_, _ = s.Update(ctx, "1", one(thing{ID: "1", Name: "x"}))
	_, _ = s.Create(ctx, func(context.Context) (thing, error) { return thing{}, errors.New("fail") })
	_ = s.Remove(ctx, Op{Action: "merge", Message: "Error al fusionar"}, "1", func(context.Context) error { return nil })

	assert.Equal(t, []recorded{
		{"thing", "create", "1"},
		{"thing", "update", "1"},
		{"thing", "merge", "1"},
	}, rec.got)
	assert.Empty(t, s.Items())
}

func TestStore_RecorderFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	s := newStore(ctx, Append, &fakeRecorder{fail: true})

	got, err := s.Create(ctx, one(thing{ID: "1"}))
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Paciente no encontrado", Message(&httpclient.APIError{Status: 404, Message: "Paciente no encontrado"}, "Error"))
	assert.Equal(t, "Error", Message(&httpclient.APIError{Status: 500}, "Error"))
	assert.Equal(t, "raw", Message(errors.New("raw"), ""))
}
