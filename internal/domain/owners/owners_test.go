package owners

import (
	"context"
	"testing"

	"riavet-admin/internal/platform/httpclient"
	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items     []Owner
	deleteErr error
}

func (r *testRepo) List(context.Context, string) ([]Owner, error) { return r.items, nil }

func (r *testRepo) GetByID(_ context.Context, id string) (Owner, error) {
	for _, o := range r.items {
		if o.ID == id {
			return o, nil
		}
	}
	return Owner{}, &httpclient.APIError{Status: 404}
}

func (r *testRepo) Create(_ context.Context, in Input) (Owner, error) {
	o := Owner{ID: "o-new", FullName: in.FullName, Phone: in.Phone, Email: in.Email, Active: true}
	r.items = append(r.items, o)
	return o, nil
}

func (r *testRepo) Update(_ context.Context, id string, in Input) (Owner, error) {
	return Owner{ID: id, FullName: in.FullName, Phone: in.Phone, Email: in.Email, Active: true}, nil
}

func (r *testRepo) Delete(context.Context, string) error { return r.deleteErr }

func TestStore_DeleteRemovesLocallyOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []Owner{{ID: "o-1", FullName: "Juan Pérez"}, {ID: "o-2", FullName: "Ana"}}}
	st := NewStore(ctx, repo, nil, logger.Nop())
	_, err := st.Fetch(ctx, "")
	require.NoError(t, err)

	repo.deleteErr = &httpclient.APIError{Status: 409, Message: "El propietario tiene pacientes"}
	require.Error(t, st.Delete(ctx, "o-1"))
	assert.Len(t, st.Items(), 2)
	assert.Equal(t, "El propietario tiene pacientes", st.Err())

	repo.deleteErr = nil
	require.NoError(t, st.Delete(ctx, "o-1"))
	assert.Equal(t, []Owner{{ID: "o-2", FullName: "Ana"}}, st.Items())
}

func TestStore_CreatePrepends(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []Owner{{ID: "o-1"}}}
	st := NewStore(ctx, repo, nil, logger.Nop())
	_, _ = st.Fetch(ctx, "")

	created, err := st.Create(ctx, Input{FullName: "Juan Pérez"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, st.Items()[0].ID)
}

func TestSearchAndStats(t *testing.T) {
	items := []Owner{
		{FullName: "Juan Pérez", Email: "juan@riavet.com"},
		{FullName: "Ana Gómez", Phone: "555-1234"},
		{FullName: "Luis"},
	}
	assert.Len(t, Search(items, "riavet"), 1)
	assert.Len(t, Search(items, "555"), 1)
	assert.Len(t, Search(items, "JUAN"), 1)
	assert.Len(t, Search(items, ""), 3)
	assert.Equal(t, Stats{Total: 3, WithEmail: 1, WithPhone: 1}, ComputeStats(items))
}

func TestForm(t *testing.T) {
	f := NewForm(map[string]string{
		"fullName": "",
		"phone":    "012345678901234567890",
		"email":    "bad",
	})
	_, err := f.Submit()
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.Errors{
		"fullName": "El nombre completo es requerido",
		"phone":    "Máximo 20 caracteres",
		"email":    "Email inválido",
	}, verr.Fields)

	f = NewForm(map[string]string{"fullName": "Juan Pérez"})
	values, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, Input{FullName: "Juan Pérez"}, InputFromValues(values))
}
