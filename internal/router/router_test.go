package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"riavet-admin/internal/config"
	"riavet-admin/internal/domain/veterinarians"
	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/router"
	"riavet-admin/internal/testutil/fakeapi"
	"riavet-admin/internal/toast"
)

var now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)

type env struct {
	url    string
	api    *fakeapi.Server
	toasts *toast.Notifier
}

func newEnv(t *testing.T) env {
	t.Helper()

	api := fakeapi.New()
	t.Cleanup(api.Close)

	backends, err := router.NewBackends(config.BackendsConfig{
		PatientsBaseURL:     api.PatientsURL(),
		RecordsBaseURL:      api.RecordsURL(),
		InvoicesBaseURL:     api.InvoicesURL(),
		AppointmentsBaseURL: api.AppointmentsURL(),
	}, time.Second, logger.Nop(), nil)
	if err != nil {
		t.Fatalf("backends: %v", err)
	}

	toasts := toast.New(toast.Options{DefaultDuration: time.Minute})
	t.Cleanup(toasts.Close)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Backends: backends,
		Toasts:   toasts,
		Log:      logger.Nop(),
		Now:      func() time.Time { return now },
	}))
	t.Cleanup(ts.Close)

	return env{url: ts.URL, api: api, toasts: toasts}
}

func TestHTTP_OwnerPatientAppointmentFlow(t *testing.T) {
	e := newEnv(t)
	vet := e.api.SeedVeterinarian(veterinarians.Veterinarian{FirstName: "Ana", LastName: "Ruiz", Email: "ana@riavet.com", LicenseNumber: "LIC-1", Active: true})
	e.api.SeedVeterinarian(veterinarians.Veterinarian{FirstName: "Luis", LastName: "Mora", Email: "luis@riavet.com", LicenseNumber: "LIC-2", Active: false})

	// 1) Propietario
	ownerID := created(t, e.url, "/owners", map[string]any{"fullName": "Juan Pérez", "email": "juan@riavet.com"})

	// 2) Paciente del propietario
	patientID := created(t, e.url, "/patients", map[string]any{
		"name":      "Milo",
		"species":   "Perro",
		"breed":     "Mestizo",
		"birthDate": "2020-01-10",
		"ownerId":   ownerID,
	})

	// 3) Opciones del form: sólo veterinarios activos
	{
		st, body := doReq(t, e.url, "GET", "/appointments/form", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 form options, got %d body=%s", st, body)
		}
		var resp struct {
			Veterinarians []veterinarians.Option `json:"veterinarians"`
		}
		decode(t, body, &resp)
		if len(resp.Veterinarians) != 1 || resp.Veterinarians[0].ID != vet.ID {
			t.Fatalf("expected only active vet, got %+v", resp.Veterinarians)
		}
	}

	// 4) Cita con fecha futura
	appointmentID := created(t, e.url, "/appointments", map[string]any{
		"patientId":      patientID,
		"veterinarianId": vet.ID,
		"scheduledAt":    "2024-06-16T09:00",
	})

	// Otra cita con otro veterinario: no debe aparecer en el filtro
	other := e.api.SeedVeterinarian(veterinarians.Veterinarian{FirstName: "Marta", LastName: "Gil", Email: "marta@riavet.com", LicenseNumber: "LIC-3", Active: true})
	otherID := created(t, e.url, "/appointments", map[string]any{
		"patientId":      patientID,
		"veterinarianId": other.ID,
		"scheduledAt":    "2024-06-17T11:30",
	})
	if otherID == appointmentID {
		t.Fatalf("expected distinct appointment ids, got %s twice", otherID)
	}

	// 5) Agenda filtrada por veterinario
	{
		st, body := doReq(t, e.url, "GET", "/appointments?veterinarianId="+vet.ID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list appointments, got %d body=%s", st, body)
		}
		var resp struct {
			Items []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"items"`
			Stats struct {
				Pending int `json:"pending"`
			} `json:"stats"`
		}
		decode(t, body, &resp)
		if len(resp.Items) != 1 || resp.Items[0].ID != appointmentID || resp.Items[0].Status != "PENDING" {
			t.Fatalf("unexpected agenda: %+v", resp.Items)
		}
		if resp.Stats.Pending != 1 {
			t.Fatalf("expected 1 pending, got %d", resp.Stats.Pending)
		}
	}

	// 6) Cancelar
	{
		st, body := doReq(t, e.url, "PATCH", "/appointments/"+appointmentID+"/cancel", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"CANCELED"`) {
			t.Fatalf("expected 200 canceled, got %d body=%s", st, body)
		}
	}

	// 7) Veterinario inactivo rechazado por el form
	{
		st, body := doReq(t, e.url, "POST", "/appointments", "", map[string]any{
			"patientId":      patientID,
			"veterinarianId": "not-offered",
			"scheduledAt":    "2024-06-16T09:00",
		})
		if st != http.StatusUnprocessableEntity || !strings.Contains(string(body), "El veterinario seleccionado no está disponible") {
			t.Fatalf("expected 422 vet not offered, got %d body=%s", st, body)
		}
	}
}

func TestHTTP_InvoiceLifecycle(t *testing.T) {
	e := newEnv(t)

	invoiceID := created(t, e.url, "/invoices", map[string]any{
		"patientId": "p-1",
		"total":     "150.50",
		"items":     "Consulta general",
	})

	// Borrador: editable
	{
		st, body := doReq(t, e.url, "PUT", "/invoices/"+invoiceID, "", map[string]any{"items": "Consulta general y vacuna"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 editing draft, got %d body=%s", st, body)
		}
	}

	for _, to := range []string{"SENT", "PAID"} {
		st, body := doReq(t, e.url, "POST", "/invoices/"+invoiceID+"/status", "", map[string]any{"status": to})
		if st != http.StatusOK {
			t.Fatalf("expected 200 moving to %s, got %d body=%s", to, st, body)
		}
		if to != "SENT" {
			continue
		}

		// Enviada: ya no se edita
		st, body = doReq(t, e.url, "PUT", "/invoices/"+invoiceID, "", map[string]any{"total": "999"})
		if st != http.StatusConflict || !strings.Contains(string(body), "Solo se pueden editar facturas en borrador") {
			t.Fatalf("expected 409 editing sent invoice, got %d body=%s", st, body)
		}
	}

	// Pagada: ya no se puede volver atrás ni borrar
	{
		st, body := doReq(t, e.url, "POST", "/invoices/"+invoiceID+"/status", "", map[string]any{"status": "DRAFT"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 invalid transition, got %d body=%s", st, body)
		}
	}
	{
		st, body := doReq(t, e.url, "DELETE", "/invoices/"+invoiceID, "", nil)
		if st != http.StatusConflict || !strings.Contains(string(body), "Solo se pueden eliminar") {
			t.Fatalf("expected 409 delete paid invoice, got %d body=%s", st, body)
		}
	}

	// Listado: sin acciones para PAID
	{
		st, body := doReq(t, e.url, "GET", "/invoices?status=PAID", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list invoices, got %d body=%s", st, body)
		}
		var resp struct {
			Items []struct {
				ID      string   `json:"id"`
				Actions []string `json:"actions"`
			} `json:"items"`
			Stats struct {
				Paid       int     `json:"paid"`
				PaidAmount float64 `json:"paidAmount"`
			} `json:"stats"`
		}
		decode(t, body, &resp)
		if len(resp.Items) != 1 || len(resp.Items[0].Actions) != 0 {
			t.Fatalf("unexpected rows: %+v", resp.Items)
		}
		if resp.Stats.Paid != 1 || resp.Stats.PaidAmount != 150.5 {
			t.Fatalf("unexpected stats: %+v", resp.Stats)
		}
	}

	{
		st, body := doReq(t, e.url, "GET", "/invoices?status=LOST", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad status filter, got %d body=%s", st, body)
		}
	}
}

func TestHTTP_PatientPartialUpdateKeepsOtherFields(t *testing.T) {
	e := newEnv(t)
	ownerID := "3f1c2a4e-8b7d-4c1a-9e2f-5a6b7c8d9e0f"
	id := created(t, e.url, "/patients", map[string]any{"name": "Milo", "species": "Perro", "breed": "Mestizo", "birthDate": "2020-01-10", "ownerId": ownerID})

	{
		st, body := doReq(t, e.url, "PUT", "/patients/"+id, "", map[string]any{"name": "Max"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, body)
		}
	}

	st, body := doReq(t, e.url, "GET", "/patients/"+id, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get, got %d body=%s", st, body)
	}
	var got struct {
		Name      string `json:"name"`
		Species   string `json:"species"`
		Breed     string `json:"breed"`
		BirthDate string `json:"birthDate"`
		OwnerID   string `json:"ownerId"`
	}
	decode(t, body, &got)
	if got.Name != "Max" {
		t.Fatalf("expected updated name, got %q", got.Name)
	}
	if got.Species != "Perro" || got.Breed != "Mestizo" || got.BirthDate != "2020-01-10" || got.OwnerID != ownerID {
		t.Fatalf("expected untouched fields, got %+v", got)
	}
}

func TestHTTP_PatientMergeRequiresConfirmation(t *testing.T) {
	e := newEnv(t)
	ownerID := "3f1c2a4e-8b7d-4c1a-9e2f-5a6b7c8d9e0f"
	source := created(t, e.url, "/patients", map[string]any{"name": "Milo", "species": "Perro", "breed": "Mestizo", "birthDate": "2020-01-10", "ownerId": ownerID})
	target := created(t, e.url, "/patients", map[string]any{"name": "Milo B", "species": "Perro", "breed": "Mestizo", "birthDate": "2020-01-10", "ownerId": ownerID})

	// Vista: el origen no es candidato
	{
		st, body := doReq(t, e.url, "GET", "/patients/"+source+"/merge", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 merge view, got %d body=%s", st, body)
		}
		var view struct {
			Candidates []struct {
				ID string `json:"id"`
			} `json:"candidates"`
		}
		decode(t, body, &view)
		if len(view.Candidates) != 1 || view.Candidates[0].ID != target {
			t.Fatalf("unexpected candidates: %+v", view.Candidates)
		}
	}

	// Consigo mismo: 422
	{
		st, body := doReq(t, e.url, "POST", "/patients/"+source+"/merge", "", map[string]any{"targetPatientId": source, "confirm": true})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 self merge, got %d body=%s", st, body)
		}
	}

	// Sin confirmación: 428
	{
		st, body := doReq(t, e.url, "POST", "/patients/"+source+"/merge", "", map[string]any{"targetPatientId": target})
		if st != http.StatusPreconditionRequired {
			t.Fatalf("expected 428 without confirm, got %d body=%s", st, body)
		}
	}

	{
		st, body := doReq(t, e.url, "POST", "/patients/"+source+"/merge", "", map[string]any{"targetPatientId": target, "confirm": true})
		if st != http.StatusOK {
			t.Fatalf("expected 200 merge, got %d body=%s", st, body)
		}
	}

	{
		st, _ := doReq(t, e.url, "GET", "/patients/"+source, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for merged source, got %d", st)
		}
	}
}

func TestHTTP_ValidationAndBackendErrors(t *testing.T) {
	e := newEnv(t)

	// Validación local: nunca llega al backend
	{
		st, body := doReq(t, e.url, "POST", "/owners", "", map[string]any{"fullName": "", "email": "bad"})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d body=%s", st, body)
		}
		var resp struct {
			Fields map[string]string `json:"fields"`
		}
		decode(t, body, &resp)
		if resp.Fields["fullName"] != "El nombre completo es requerido" || resp.Fields["email"] != "Email inválido" {
			t.Fatalf("unexpected fields: %+v", resp.Fields)
		}
	}

	// Error del backend: status y mensaje del servicio + toast de error
	e.api.FailNext(http.StatusConflict, "El email ya está registrado")
	{
		st, body := doReq(t, e.url, "POST", "/owners", "", map[string]any{"fullName": "Juan Pérez"})
		if st != http.StatusConflict || !strings.Contains(string(body), "El email ya está registrado") {
			t.Fatalf("expected 409 from backend, got %d body=%s", st, body)
		}
	}
	if !hasToast(e.toasts, toast.TypeError, "El email ya está registrado") {
		t.Fatalf("expected error toast, got %+v", e.toasts.List())
	}

	// Backend caído: 503
	e.api.Close()
	{
		st, body := doReq(t, e.url, "GET", "/records", "", nil)
		if st != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 with backend down, got %d body=%s", st, body)
		}
	}
}

func TestHTTP_ToastsAndActivity(t *testing.T) {
	e := newEnv(t)

	recordID := created(t, e.url, "/records", map[string]any{
		"patientId":      "p-1",
		"veterinarianId": "v-1",
		"diagnosis":      "Otitis externa bilateral",
	}, "dra.paz")

	{
		st, body := doReq(t, e.url, "GET", "/toasts", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toasts, got %d", st)
		}
		var resp struct {
			Items []toast.Toast `json:"items"`
		}
		decode(t, body, &resp)
		if len(resp.Items) != 1 || resp.Items[0].Message != "Registro clínico creado exitosamente" {
			t.Fatalf("unexpected toasts: %+v", resp.Items)
		}

		st, _ = doReq(t, e.url, "DELETE", "/toasts/"+resp.Items[0].ID, "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 dismiss, got %d", st)
		}
		st, _ = doReq(t, e.url, "DELETE", "/toasts/"+resp.Items[0].ID, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 second dismiss, got %d", st)
		}
	}

	{
		st, body := doReq(t, e.url, "GET", "/activity?limit=10", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 activity, got %d body=%s", st, body)
		}
		var resp struct {
			Items []struct {
				Entity   string `json:"entity"`
				Action   string `json:"action"`
				EntityID string `json:"entityId"`
				Operator string `json:"operator"`
			} `json:"items"`
		}
		decode(t, body, &resp)
		if len(resp.Items) != 1 {
			t.Fatalf("expected 1 activity entry, got %+v", resp.Items)
		}
		got := resp.Items[0]
		if got.Entity != "record" || got.Action != "create" || got.EntityID != recordID || got.Operator != "dra.paz" {
			t.Fatalf("unexpected entry: %+v", got)
		}
	}

	{
		st, body := doReq(t, e.url, "GET", "/dashboard", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"pending":1`) {
			t.Fatalf("expected dashboard with 1 pending, got %d body=%s", st, body)
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	e := newEnv(t)

	st, body := doReq(t, e.url, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected health ok, got %d %s", st, body)
	}

	st, body = doReq(t, e.url, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "http_requests_total") {
		t.Fatalf("expected metrics, got %d", st)
	}
}

// ---------- helpers ----------

func created(t *testing.T, baseURL, path string, payload map[string]any, operator ...string) string {
	t.Helper()
	op := ""
	if len(operator) > 0 {
		op = operator[0]
	}
	st, body := doReq(t, baseURL, "POST", path, op, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, body)
	}
	var resp struct {
		Item struct {
			ID string `json:"id"`
		} `json:"item"`
	}
	decode(t, body, &resp)
	if resp.Item.ID == "" {
		t.Fatalf("expected item id in %s", body)
	}
	return resp.Item.ID
}

func hasToast(n *toast.Notifier, typ toast.Type, msg string) bool {
	for _, tt := range n.List() {
		if tt.Type == typ && tt.Message == msg {
			return true
		}
	}
	return false
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func doReq(t *testing.T, baseURL, method, path, operator string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if operator != "" {
		req.Header.Set("X-Operator", operator)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
