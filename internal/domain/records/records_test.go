package records

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items     []ClinicalRecord
	lastQuery Query
	lastVet   string
}

func (r *testRepo) List(_ context.Context, q Query) ([]ClinicalRecord, error) {
	r.lastQuery = q
	return r.items, nil
}

func (r *testRepo) ListByVeterinarian(_ context.Context, vetID string) ([]ClinicalRecord, error) {
	r.lastVet = vetID
	return r.items[:1], nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (ClinicalRecord, error) {
	return ClinicalRecord{ID: id}, nil
}

func (r *testRepo) Create(_ context.Context, in Input) (ClinicalRecord, error) {
	return ClinicalRecord{ID: "r-new", PatientID: in.PatientID, Diagnosis: in.Diagnosis, Status: in.Status}, nil
}

func (r *testRepo) Update(_ context.Context, id string, in Input) (ClinicalRecord, error) {
	return ClinicalRecord{ID: id, Diagnosis: in.Diagnosis, Status: in.Status}, nil
}

func (r *testRepo) Delete(context.Context, string) error { return nil }

func clock() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local) }

func TestStore_FetchAndCreatePrepends(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []ClinicalRecord{{ID: "r-1", Status: StatusActive}, {ID: "r-2", Status: StatusPending}}}
	st := NewStore(ctx, repo, nil, logger.Nop())

	_, err := st.Fetch(ctx, Query{PatientID: " p-1 ", Status: StatusActive})
	require.NoError(t, err)
	assert.Equal(t, Query{PatientID: "p-1", Status: StatusActive}, repo.lastQuery)

	_, err = st.Create(ctx, Input{PatientID: "p-1", Diagnosis: "Otitis externa leve"})
	require.NoError(t, err)
	assert.Equal(t, "r-new", st.Items()[0].ID)
	assert.Len(t, st.Items(), 3)
}

func TestStore_FetchByVeterinarian(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{items: []ClinicalRecord{{ID: "r-1"}, {ID: "r-2"}}}
	st := NewStore(ctx, repo, nil, logger.Nop())

	items, err := st.FetchByVeterinarian(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, "v-1", repo.lastVet)
	assert.Len(t, items, 1)
	assert.Len(t, st.Items(), 1)
}

func TestComputeStats(t *testing.T) {
	items := []ClinicalRecord{
		{Status: StatusPending}, {Status: StatusPending}, {Status: StatusActive},
		{Status: StatusCompleted}, {Status: StatusCancelled},
	}
	assert.Equal(t, Stats{Total: 5, Pending: 2, Active: 1, Completed: 1, Cancelled: 1}, ComputeStats(items))
}

func TestForm_Messages(t *testing.T) {
	f := NewForm(clock, map[string]string{
		"patientId":      "p 1",
		"veterinarianId": "",
		"diagnosis":      "corto",
		"followUpDate":   "2024-06-14",
	})
	_, err := f.Submit()
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.Errors{
		"patientId":      "El ID del paciente debe ser alfanumérico",
		"veterinarianId": "El ID del veterinario es requerido",
		"diagnosis":      "El diagnóstico debe tener al menos 10 caracteres",
		"followUpDate":   "La fecha de seguimiento debe ser futura",
	}, verr.Fields)
}

func TestForm_DefaultsAndOmitsBlankOptionals(t *testing.T) {
	f := NewForm(clock, nil)
	f.Load(map[string]string{
		"patientId":      "p-1",
		"veterinarianId": "v_1",
		"diagnosis":      "  Dermatitis alérgica  ",
		"procedures":     "   ",
		"prescription":   " Prednisolona ",
		"followUpDate":   "2024-06-15",
	})
	values, err := f.Submit()
	require.NoError(t, err)

	in := InputFromValues(values)
	assert.Equal(t, StatusPending, in.Status)
	assert.Equal(t, "Dermatitis alérgica", in.Diagnosis)

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"patientId": "p-1",
		"veterinarianId": "v_1",
		"diagnosis": "Dermatitis alérgica",
		"prescription": "Prednisolona",
		"followUpDate": "2024-06-15",
		"status": "PENDING"
	}`, string(raw))
}

func TestForm_RejectsUnknownStatus(t *testing.T) {
	f := NewForm(clock, map[string]string{
		"patientId": "p-1", "veterinarianId": "v-1", "diagnosis": "Control anual sin hallazgos", "status": "OPEN",
	})
	_, err := f.Submit()
	require.Error(t, err)
	assert.Equal(t, "Estado inválido", f.Error("status"))
}
