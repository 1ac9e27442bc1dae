package invoices

import (
	"context"
	"testing"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items   []Invoice
	updates []UpdateInput
	deletes int
}

func (r *testRepo) List(context.Context, Query) ([]Invoice, error) { return r.items, nil }

func (r *testRepo) GetByID(_ context.Context, id string) (Invoice, error) {
	for _, inv := range r.items {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, nil
}

func (r *testRepo) Create(_ context.Context, in Input) (Invoice, error) {
	inv := Invoice{ID: "i-new", PatientID: in.PatientID, Total: in.Total, Items: in.Items, Status: StatusDraft}
	r.items = append(r.items, inv)
	return inv, nil
}

func (r *testRepo) Update(_ context.Context, id string, in UpdateInput) (Invoice, error) {
	r.updates = append(r.updates, in)
	for i, inv := range r.items {
		if inv.ID == id {
			if in.Status != "" {
				r.items[i].Status = in.Status
			}
			r.items[i].Total = in.Total
			return r.items[i], nil
		}
	}
	return Invoice{}, nil
}

func (r *testRepo) Delete(context.Context, string) error {
	r.deletes++
	return nil
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusDraft, StatusSent))
	assert.True(t, CanTransition(StatusSent, StatusPaid))
	assert.True(t, CanTransition(StatusDraft, StatusCanceled))
	assert.True(t, CanTransition(StatusSent, StatusCanceled))

	assert.False(t, CanTransition(StatusDraft, StatusPaid))
	assert.False(t, CanTransition(StatusPaid, StatusCanceled))
	assert.False(t, CanTransition(StatusCanceled, StatusDraft))
	assert.False(t, CanTransition(StatusSent, StatusDraft))
}

func TestActions(t *testing.T) {
	assert.Equal(t, []Action{ActionEdit, ActionSend, ActionCancel, ActionDelete}, Actions(StatusDraft))
	assert.Equal(t, []Action{ActionPay, ActionCancel, ActionDelete}, Actions(StatusSent))
	assert.Empty(t, Actions(StatusPaid))
	assert.Empty(t, Actions(StatusCanceled))
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	st := NewStore(ctx, repo, nil, logger.Nop())

	inv, err := st.Create(ctx, Input{PatientID: "p-1", Total: 150.50, Items: "Consulta"})
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, inv.Status)

	inv, err = st.ChangeStatus(ctx, inv.ID, StatusSent)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, inv.Status)
	assert.Equal(t, UpdateInput{PatientID: "p-1", Total: 150.50, Items: "Consulta", Status: StatusSent}, repo.updates[0])

	inv, err = st.ChangeStatus(ctx, inv.ID, StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, st.Items()[0].Status)

	err = st.Delete(ctx, inv.ID)
	require.ErrorIs(t, err, ErrDeleteNotAllowed)
	assert.Equal(t, 0, repo.deletes)
	assert.Len(t, st.Items(), 1)

	_, err = st.ChangeStatus(ctx, inv.ID, StatusCanceled)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, repo.updates, 2)
}

func TestStore_UpdateOnlyDraft(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []Invoice{
		{ID: "i-1", Status: StatusDraft},
		{ID: "i-2", Status: StatusSent},
	}}
	st := NewStore(ctx, repo, nil, logger.Nop())
	_, _ = st.Fetch(ctx, Query{})

	inv, err := st.Update(ctx, "i-1", Input{PatientID: "p", Total: 10, Items: "x"})
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, inv.Status)
	assert.Empty(t, repo.updates[0].Status)

	_, err = st.Update(ctx, "i-2", Input{PatientID: "p", Total: 10, Items: "x"})
	require.ErrorIs(t, err, ErrEditNotAllowed)
	assert.Equal(t, "Solo se pueden editar facturas en borrador", ConflictMessage(err))
}

func TestStore_DeleteDraftRemovesLocally(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []Invoice{{ID: "i-1", Status: StatusDraft}}}
	st := NewStore(ctx, repo, nil, logger.Nop())
	_, _ = st.Fetch(ctx, Query{})

	require.NoError(t, st.Delete(ctx, "i-1"))
	assert.Empty(t, st.Items())
	assert.Equal(t, 1, repo.deletes)
}

func TestFilterAndStats(t *testing.T) {
	items := []Invoice{
		{ID: "i-1", PatientID: "p-1", Items: "Consulta", Status: StatusDraft, Total: 10},
		{ID: "i-2", PatientID: "p-2", Items: "Vacuna", Status: StatusPaid, Total: 20.5},
		{ID: "i-3", PatientID: "p-1", Items: "Cirugía", Status: StatusPaid, Total: 100},
	}
	assert.Len(t, Filter(items, "paid", ""), 2)
	assert.Len(t, Filter(items, "ALL", "vacuna"), 1)
	assert.Len(t, Filter(items, "", "p-1"), 2)
	assert.Equal(t, Stats{Total: 3, Draft: 1, Paid: 2, PaidAmount: 120.5}, ComputeStats(items))
}

func TestForm(t *testing.T) {
	f := NewForm(map[string]string{"patientId": "", "total": "0", "items": " "})
	_, err := f.Submit()
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.Errors{
		"patientId": "El paciente es requerido",
		"total":     "El total debe ser mayor a 0",
		"items":     "Los items son requeridos",
	}, verr.Fields)

	f.Set("total", "1000000")
	assert.Equal(t, "El total no puede superar $999,999.99", f.Error("total"))
	f.Set("total", "999999.99")
	assert.Empty(t, f.Error("total"))

	f.Set("patientId", "p-1")
	f.Set("items", " Consulta ")
	values, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, Input{PatientID: "p-1", Total: 999999.99, Items: "Consulta"}, InputFromValues(values))
}
