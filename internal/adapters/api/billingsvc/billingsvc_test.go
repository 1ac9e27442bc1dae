package billingsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"riavet-admin/internal/domain/invoices"
	"riavet-admin/internal/platform/httpclient"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, r http.Handler) *InvoicesClient {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	c, err := httpclient.NewWithOptions(httpclient.Options{BaseURL: srv.URL + "/api/v1", Service: "invoices"})
	require.NoError(t, err)
	return NewInvoicesClient(c)
}

func TestInvoicesClient_ListFilters(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/invoices", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PAID", r.URL.Query().Get("status"))
		assert.Equal(t, "p-1", r.URL.Query().Get("patientId"))
		_ = json.NewEncoder(w).Encode([]invoices.Invoice{{ID: "i-1", Total: 150.5}})
	})

	got, err := newClient(t, r).List(context.Background(), invoices.Query{Status: invoices.StatusPaid, PatientID: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, 150.5, got[0].Total)
}

func TestInvoicesClient_UpdateSendsFullBody(t *testing.T) {
	var raw map[string]any
	r := chi.NewRouter()
	r.Put("/api/v1/invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.NewEncoder(w).Encode(invoices.Invoice{ID: chi.URLParam(r, "id"), Status: invoices.StatusSent})
	})

	inv, err := newClient(t, r).Update(context.Background(), "i-1", invoices.UpdateInput{
		PatientID: "p-1", Total: 150.5, Items: "Consulta", Status: invoices.StatusSent,
	})
	require.NoError(t, err)
	assert.Equal(t, invoices.StatusSent, inv.Status)
	assert.Equal(t, map[string]any{"patientId": "p-1", "total": 150.5, "items": "Consulta", "status": "SENT"}, raw)
}

func TestInvoicesClient_ServerErrorMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/api/v1/invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"fallo interno"}`))
	})

	err := newClient(t, r).Delete(context.Background(), "i-1")
	var apiErr *httpclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "fallo interno", apiErr.Message)
}
