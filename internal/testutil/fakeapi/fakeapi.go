// Package fakeapi levanta en memoria los cuatro backends REST que consume la
// consola (pacientes, historias clínicas, facturación y agenda). Se usa en
// tests de router y adapters; no valida reglas de negocio más allá de lo que
// los servicios reales devuelven como 400/404.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"time"

	"riavet-admin/internal/domain/appointments"
	"riavet-admin/internal/domain/invoices"
	"riavet-admin/internal/domain/owners"
	"riavet-admin/internal/domain/patients"
	"riavet-admin/internal/domain/records"
	"riavet-admin/internal/domain/veterinarians"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server es un único httptest.Server con todas las rutas bajo /api/v1.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	patients      []patients.Patient
	owners        []owners.Owner
	appointments  []appointments.Appointment
	veterinarians []veterinarians.Veterinarian
	invoices      []invoices.Invoice
	records       []records.ClinicalRecord

	failStatus  int
	failMessage string

	now func() time.Time
}

func New() *Server {
	s := &Server{now: time.Now}

	r := chi.NewRouter()
	r.Use(s.failNext)
	r.Route("/api/v1", func(r chi.Router) {
		s.patientRoutes(r)
		s.ownerRoutes(r)
		s.appointmentRoutes(r)
		s.veterinarianRoutes(r)
		s.invoiceRoutes(r)
		s.recordRoutes(r)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// PatientsURL y RecordsURL no llevan /api/v1 (los clients lo agregan);
// facturación y agenda sí, igual que en la configuración real.
func (s *Server) PatientsURL() string     { return s.URL }
func (s *Server) RecordsURL() string      { return s.URL }
func (s *Server) InvoicesURL() string     { return s.URL + "/api/v1" }
func (s *Server) AppointmentsURL() string { return s.URL + "/api/v1" }

// FailNext hace que el próximo request responda status con {"message": msg}.
func (s *Server) FailNext(status int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failMessage = msg
}

func (s *Server) failNext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, msg := s.failStatus, s.failMessage
		s.failStatus, s.failMessage = 0, ""
		s.mu.Unlock()

		if status != 0 {
			writeMessage(w, status, msg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SeedVeterinarian(v veterinarians.Veterinarian) veterinarians.Veterinarian {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	s.veterinarians = append(s.veterinarians, v)
	return v
}

func (s *Server) SeedPatient(p patients.Patient) patients.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.patients = append(s.patients, p)
	return p
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	return slices.IndexFunc(items, func(it T) bool { return key(it) == id })
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

// ---------- pacientes ----------

func patientID(p patients.Patient) string { return p.ID }

func (s *Server) patientRoutes(r chi.Router) {
	r.Get("/patients", func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []patients.Patient{}
		for _, p := range s.patients {
			if search == "" || contains(p.Name, search) || contains(p.Species, search) || contains(p.Breed, search) {
				out = append(out, p)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/patients", func(w http.ResponseWriter, r *http.Request) {
		var in patients.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		p := patients.Patient{
			ID: uuid.NewString(), Name: in.Name, Species: in.Species, Breed: in.Breed,
			BirthDate: in.BirthDate, OwnerID: in.OwnerID, CreatedAt: s.timestamp(),
		}
		s.patients = append(s.patients, p)
		writeJSON(w, http.StatusCreated, p)
	})

	r.Get("/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.patients, chi.URLParam(r, "id"), patientID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Paciente no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, s.patients[i])
	})

	r.Put("/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in patients.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.patients, chi.URLParam(r, "id"), patientID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Paciente no encontrado")
			return
		}
		p := &s.patients[i]
		p.Name, p.Species, p.Breed, p.BirthDate, p.OwnerID = in.Name, in.Species, in.Breed, in.BirthDate, in.OwnerID
		p.UpdatedAt = s.timestamp()
		writeJSON(w, http.StatusOK, *p)
	})

	r.Post("/patients/{id}/merge", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			TargetPatientID string `json:"targetPatientId"`
		}
		if !decode(w, r, &in) {
			return
		}
		sourceID := chi.URLParam(r, "id")
		if sourceID == in.TargetPatientID {
			writeMessage(w, http.StatusBadRequest, "No se puede fusionar un paciente consigo mismo")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		si := indexOf(s.patients, sourceID, patientID)
		ti := indexOf(s.patients, in.TargetPatientID, patientID)
		if si < 0 || ti < 0 {
			writeMessage(w, http.StatusNotFound, "Paciente no encontrado")
			return
		}
		target := s.patients[ti]
		for i := range s.records {
			if s.records[i].PatientID == sourceID {
				s.records[i].PatientID = target.ID
			}
		}
		for i := range s.appointments {
			if s.appointments[i].PatientID == sourceID {
				s.appointments[i].PatientID = target.ID
			}
		}
		s.patients = slices.Delete(s.patients, si, si+1)
		writeJSON(w, http.StatusOK, target)
	})
}

// ---------- propietarios ----------

func ownerID(o owners.Owner) string { return o.ID }

// Los propietarios se borran lógicamente (active=false) y dejan de listarse.
func (s *Server) ownerRoutes(r chi.Router) {
	r.Get("/owners", func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []owners.Owner{}
		for _, o := range s.owners {
			if !o.Active {
				continue
			}
			if search == "" || contains(o.FullName, search) || contains(o.Email, search) || contains(o.Phone, search) {
				out = append(out, o)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/owners", func(w http.ResponseWriter, r *http.Request) {
		var in owners.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		o := owners.Owner{ID: uuid.NewString(), FullName: in.FullName, Phone: in.Phone, Email: in.Email, Active: true, CreatedAt: s.timestamp()}
		s.owners = append(s.owners, o)
		writeJSON(w, http.StatusCreated, o)
	})

	r.Get("/owners/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.owners, chi.URLParam(r, "id"), ownerID)
		if i < 0 || !s.owners[i].Active {
			writeMessage(w, http.StatusNotFound, "Propietario no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, s.owners[i])
	})

	r.Put("/owners/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in owners.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.owners, chi.URLParam(r, "id"), ownerID)
		if i < 0 || !s.owners[i].Active {
			writeMessage(w, http.StatusNotFound, "Propietario no encontrado")
			return
		}
		o := &s.owners[i]
		o.FullName, o.Phone, o.Email = in.FullName, in.Phone, in.Email
		o.UpdatedAt = s.timestamp()
		writeJSON(w, http.StatusOK, *o)
	})

	r.Delete("/owners/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.owners, chi.URLParam(r, "id"), ownerID)
		if i < 0 || !s.owners[i].Active {
			writeMessage(w, http.StatusNotFound, "Propietario no encontrado")
			return
		}
		s.owners[i].Active = false
		w.WriteHeader(http.StatusNoContent)
	})
}

// ---------- citas ----------

func appointmentID(a appointments.Appointment) string { return a.ID }

func (s *Server) appointmentRoutes(r chi.Router) {
	r.Get("/appointments", func(w http.ResponseWriter, r *http.Request) {
		vetID := r.URL.Query().Get("veterinarianId")
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []appointments.Appointment{}
		for _, a := range s.appointments {
			if vetID == "" || a.VeterinarianID == vetID {
				out = append(out, s.withVeterinarian(a))
			}
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/appointments", func(w http.ResponseWriter, r *http.Request) {
		var in appointments.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if indexOf(s.veterinarians, in.VeterinarianID, veterinarianID) < 0 {
			writeMessage(w, http.StatusNotFound, "Veterinario no encontrado")
			return
		}
		a := appointments.Appointment{
			ID: uuid.NewString(), PatientID: in.PatientID, VeterinarianID: in.VeterinarianID,
			ScheduledAt: in.ScheduledAt, Status: appointments.StatusPending, CreatedAt: s.timestamp(),
		}
		s.appointments = append(s.appointments, a)
		writeJSON(w, http.StatusCreated, s.withVeterinarian(a))
	})

	r.Get("/appointments/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.appointments, chi.URLParam(r, "id"), appointmentID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Cita no encontrada")
			return
		}
		writeJSON(w, http.StatusOK, s.withVeterinarian(s.appointments[i]))
	})

	r.Put("/appointments/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in appointments.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.appointments, chi.URLParam(r, "id"), appointmentID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Cita no encontrada")
			return
		}
		a := &s.appointments[i]
		a.PatientID, a.VeterinarianID, a.ScheduledAt = in.PatientID, in.VeterinarianID, in.ScheduledAt
		a.UpdatedAt = s.timestamp()
		writeJSON(w, http.StatusOK, s.withVeterinarian(*a))
	})

	r.Patch("/appointments/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.appointments, chi.URLParam(r, "id"), appointmentID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Cita no encontrada")
			return
		}
		s.appointments[i].Status = appointments.StatusCanceled
		s.appointments[i].UpdatedAt = s.timestamp()
		writeJSON(w, http.StatusOK, s.withVeterinarian(s.appointments[i]))
	})

	r.Delete("/appointments/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.appointments, chi.URLParam(r, "id"), appointmentID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Cita no encontrada")
			return
		}
		s.appointments = slices.Delete(s.appointments, i, i+1)
		w.WriteHeader(http.StatusNoContent)
	})
}

// withVeterinarian embebe el veterinario como hace la agenda real.
// Requiere s.mu tomado.
func (s *Server) withVeterinarian(a appointments.Appointment) appointments.Appointment {
	if i := indexOf(s.veterinarians, a.VeterinarianID, veterinarianID); i >= 0 {
		v := s.veterinarians[i]
		a.Veterinarian = &v
	}
	return a
}

// ---------- veterinarios ----------

func veterinarianID(v veterinarians.Veterinarian) string { return v.ID }

func (s *Server) veterinarianRoutes(r chi.Router) {
	r.Get("/veterinarians", func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("onlyActive") == "true"
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []veterinarians.Veterinarian{}
		for _, v := range s.veterinarians {
			if !onlyActive || v.Active {
				out = append(out, v)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/veterinarians", func(w http.ResponseWriter, r *http.Request) {
		var in veterinarians.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if slices.ContainsFunc(s.veterinarians, func(v veterinarians.Veterinarian) bool { return strings.EqualFold(v.Email, in.Email) }) {
			writeMessage(w, http.StatusConflict, "Ya existe un veterinario con ese email")
			return
		}
		v := veterinarians.Veterinarian{
			ID: uuid.NewString(), FirstName: in.FirstName, LastName: in.LastName, Email: in.Email,
			PhoneNumber: in.PhoneNumber, LicenseNumber: in.LicenseNumber, Specialization: in.Specialization,
			Active: true, CreatedAt: s.timestamp(),
		}
		s.veterinarians = append(s.veterinarians, v)
		writeJSON(w, http.StatusCreated, v)
	})

	r.Get("/veterinarians/email/{email}", func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		s.mu.Lock()
		defer s.mu.Unlock()
		i := slices.IndexFunc(s.veterinarians, func(v veterinarians.Veterinarian) bool { return strings.EqualFold(v.Email, email) })
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Veterinario no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, s.veterinarians[i])
	})

	r.Get("/veterinarians/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.veterinarians, chi.URLParam(r, "id"), veterinarianID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Veterinario no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, s.veterinarians[i])
	})

	r.Put("/veterinarians/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in veterinarians.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.veterinarians, chi.URLParam(r, "id"), veterinarianID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Veterinario no encontrado")
			return
		}
		v := &s.veterinarians[i]
		v.FirstName, v.LastName, v.Email = in.FirstName, in.LastName, in.Email
		v.PhoneNumber, v.LicenseNumber, v.Specialization = in.PhoneNumber, in.LicenseNumber, in.Specialization
		if in.Active != nil {
			v.Active = *in.Active
		}
		v.UpdatedAt = s.timestamp()
		writeJSON(w, http.StatusOK, *v)
	})

	r.Patch("/veterinarians/{id}/deactivate", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.veterinarians, chi.URLParam(r, "id"), veterinarianID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Veterinario no encontrado")
			return
		}
		s.veterinarians[i].Active = false
		writeJSON(w, http.StatusOK, s.veterinarians[i])
	})

	r.Delete("/veterinarians/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.veterinarians, chi.URLParam(r, "id"), veterinarianID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Veterinario no encontrado")
			return
		}
		s.veterinarians = slices.Delete(s.veterinarians, i, i+1)
		w.WriteHeader(http.StatusNoContent)
	})
}

// ---------- facturas ----------

func invoiceID(inv invoices.Invoice) string { return inv.ID }

func (s *Server) invoiceRoutes(r chi.Router) {
	r.Get("/invoices", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []invoices.Invoice{}
		for _, inv := range s.invoices {
			if st := q.Get("status"); st != "" && string(inv.Status) != st {
				continue
			}
			if pid := q.Get("patientId"); pid != "" && inv.PatientID != pid {
				continue
			}
			out = append(out, inv)
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/invoices", func(w http.ResponseWriter, r *http.Request) {
		var in invoices.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		now := s.now().UTC()
		inv := invoices.Invoice{
			ID: uuid.NewString(), PatientID: in.PatientID, Total: in.Total, Items: in.Items,
			Status: invoices.StatusDraft, Date: now.Format("2006-01-02"), CreatedAt: now.Format(time.RFC3339),
		}
		s.invoices = append(s.invoices, inv)
		writeJSON(w, http.StatusCreated, inv)
	})

	r.Get("/invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.invoices, chi.URLParam(r, "id"), invoiceID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Factura no encontrada")
			return
		}
		writeJSON(w, http.StatusOK, s.invoices[i])
	})

	r.Put("/invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in invoices.UpdateInput
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.invoices, chi.URLParam(r, "id"), invoiceID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Factura no encontrada")
			return
		}
		inv := &s.invoices[i]
		inv.PatientID, inv.Total, inv.Items = in.PatientID, in.Total, in.Items
		if in.Status != "" {
			inv.Status = in.Status
		}
		inv.UpdatedAt = s.timestamp()
		writeJSON(w, http.StatusOK, *inv)
	})

	r.Delete("/invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.invoices, chi.URLParam(r, "id"), invoiceID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Factura no encontrada")
			return
		}
		s.invoices = slices.Delete(s.invoices, i, i+1)
		w.WriteHeader(http.StatusNoContent)
	})
}

// ---------- historias clínicas ----------

func recordID(rec records.ClinicalRecord) string { return rec.ID }

func (s *Server) recordRoutes(r chi.Router) {
	r.Get("/records", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []records.ClinicalRecord{}
		for _, rec := range s.records {
			if pid := q.Get("patientId"); pid != "" && rec.PatientID != pid {
				continue
			}
			if st := q.Get("status"); st != "" && string(rec.Status) != st {
				continue
			}
			out = append(out, rec)
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Get("/records/veterinarian/{id}", func(w http.ResponseWriter, r *http.Request) {
		vetID := chi.URLParam(r, "id")
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []records.ClinicalRecord{}
		for _, rec := range s.records {
			if rec.VeterinarianID == vetID {
				out = append(out, rec)
			}
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/records", func(w http.ResponseWriter, r *http.Request) {
		var in records.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		rec := recordFromInput(in)
		rec.ID = uuid.NewString()
		rec.CreatedAt = s.timestamp()
		s.records = append(s.records, rec)
		writeJSON(w, http.StatusCreated, rec)
	})

	r.Get("/records/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.records, chi.URLParam(r, "id"), recordID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Registro no encontrado")
			return
		}
		writeJSON(w, http.StatusOK, s.records[i])
	})

	r.Put("/records/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in records.Input
		if !decode(w, r, &in) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.records, chi.URLParam(r, "id"), recordID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Registro no encontrado")
			return
		}
		rec := recordFromInput(in)
		rec.ID, rec.CreatedAt = s.records[i].ID, s.records[i].CreatedAt
		s.records[i] = rec
		writeJSON(w, http.StatusOK, rec)
	})

	r.Delete("/records/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := indexOf(s.records, chi.URLParam(r, "id"), recordID)
		if i < 0 {
			writeMessage(w, http.StatusNotFound, "Registro no encontrado")
			return
		}
		s.records = slices.Delete(s.records, i, i+1)
		w.WriteHeader(http.StatusNoContent)
	})
}

func recordFromInput(in records.Input) records.ClinicalRecord {
	status := in.Status
	if status == "" {
		status = records.StatusPending
	}
	return records.ClinicalRecord{
		PatientID:      in.PatientID,
		VeterinarianID: in.VeterinarianID,
		Diagnosis:      in.Diagnosis,
		Procedures:     in.Procedures,
		Attachments:    in.Attachments,
		MedicalOrders:  in.MedicalOrders,
		Prescription:   in.Prescription,
		FollowUpDate:   in.FollowUpDate,
		Status:         status,
	}
}
