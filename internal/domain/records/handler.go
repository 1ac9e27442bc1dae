package records

import (
	"fmt"
	"net/http"
	"strings"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"

	"github.com/go-chi/chi/v5"
)

const (
	listPath     = "/records"
	dashboardLen = 5
)

func RegisterRoutes(r chi.Router, repo Repository, env web.Env) {
	r.Get("/dashboard", dashboardHandler(repo, env))

	r.Route("/records", func(rr chi.Router) {
		rr.Get("/", listRecordsHandler(repo, env))
		rr.Post("/", createRecordHandler(repo, env))
		rr.Post("/form/validate", web.ValidateFormHandler(func(*http.Request) (*validation.Form, error) {
			return NewForm(env.Clock(), nil), nil
		}))
		rr.Get("/veterinarian/{vetID}", listByVeterinarianHandler(repo, env))

		rr.Get("/{recordID}", getRecordHandler(repo, env))
		rr.Put("/{recordID}", updateRecordHandler(repo, env))
		rr.Delete("/{recordID}", deleteRecordHandler(repo, env))
	})
}

type listResponse struct {
	Items []ClinicalRecord `json:"items"`
	Stats Stats            `json:"stats"`
}

type dashboardResponse struct {
	Stats  Stats            `json:"stats"`
	Recent []ClinicalRecord `json:"recent"`
}

var sortFields = map[string]web.Compare[ClinicalRecord]{
	"createdAt":    web.ByString(func(r ClinicalRecord) string { return r.CreatedAt }),
	"followUpDate": web.ByString(func(r ClinicalRecord) string { return r.FollowUpDate }),
	"status":       web.ByString(func(r ClinicalRecord) string { return string(r.Status) }),
	"patientId":    web.ByString(func(r ClinicalRecord) string { return r.PatientID }),
}

func parseQuery(r *http.Request) (Query, error) {
	q := Query{PatientID: r.URL.Query().Get("patientId")}
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
	if raw == "" {
		return q, nil
	}
	status, ok := ParseStatus(raw)
	if !ok {
		return q, fmt.Errorf("%w: status", web.ErrInvalidInput)
	}
	q.Status = status
	return q, nil
}

// listRecordsHandler godoc
// @Summary      Registros clínicos
// @Description  patientId y status se filtran en el backend.
// @Tags         records
// @Produce      json
// @Param        patientId  query  string  false  "Paciente"
// @Param        status     query  string  false  "PENDING, ACTIVE, COMPLETED o CANCELLED"
// @Param        sort       query  string  false  "Orden"
// @Success      200  {object}  listResponse
// @Router       /records [get]
func listRecordsHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "Filtro de estado inválido")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		items, err := st.Fetch(r.Context(), q)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		writeList(w, r, items)
	}
}

// listByVeterinarianHandler godoc
// @Summary      Registros de un veterinario
// @Tags         records
// @Produce      json
// @Param        vetID  path  string  true  "Veterinario"
// @Success      200  {object}  listResponse
// @Router       /records/veterinarian/{vetID} [get]
func listByVeterinarianHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		items, err := st.FetchByVeterinarian(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		writeList(w, r, items)
	}
}

func writeList(w http.ResponseWriter, r *http.Request, items []ClinicalRecord) {
	stats := ComputeStats(items)
	if err := web.Sort(items, r.URL.Query().Get("sort"), sortFields); err != nil {
		web.WriteError(w, http.StatusBadRequest, err, "")
		return
	}
	web.WriteJSON(w, http.StatusOK, listResponse{Items: items, Stats: stats})
}

// dashboardHandler godoc
// @Summary      Dashboard de registros
// @Description  Conteo por estado y los últimos registros.
// @Tags         records
// @Produce      json
// @Param        patientId  query  string  false  "Paciente"
// @Param        status     query  string  false  "Estado"
// @Success      200  {object}  dashboardResponse
// @Router       /dashboard [get]
func dashboardHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "Filtro de estado inválido")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		items, err := st.Fetch(r.Context(), q)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		stats := ComputeStats(items)
		_ = web.Sort(items, "-createdAt", sortFields)
		web.WriteJSON(w, http.StatusOK, dashboardResponse{Stats: stats, Recent: items[:min(len(items), dashboardLen)]})
	}
}

// createRecordHandler godoc
// @Summary      Crear registro clínico
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  Input  true  "Registro"
// @Success      201  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /records [post]
func createRecordHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := web.DecodeValues(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		form := NewForm(env.Clock(), nil)
		form.Load(values)
		valid, err := form.Submit()
		if err != nil {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, err, "")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		rec, err := st.Create(r.Context(), InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusCreated, "Registro clínico creado exitosamente", web.Mutation{Item: rec, Redirect: "/dashboard"})
	}
}

// getRecordHandler godoc
// @Summary      Detalle de registro clínico
// @Tags         records
// @Produce      json
// @Param        recordID  path  string  true  "ID"
// @Success      200  {object}  ClinicalRecord
// @Router       /records/{recordID} [get]
func getRecordHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		rec, err := st.Get(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, rec)
	}
}

// updateRecordHandler godoc
// @Summary      Editar registro clínico
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        recordID  path  string  true  "ID"
// @Param        body  body  Input  true  "Cambios"
// @Success      200  {object}  web.Mutation
// @Router       /records/{recordID} [put]
func updateRecordHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "recordID")

		values, err := web.DecodeValues(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		current, err := st.Get(r.Context(), id)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		form := NewForm(env.Clock(), FormValues(current))
		form.Load(values)
		valid, err := form.Submit()
		if err != nil {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, err, "")
			return
		}

		rec, err := st.Update(r.Context(), id, InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusOK, "Registro actualizado exitosamente", web.Mutation{Item: rec, Redirect: listPath})
	}
}

// deleteRecordHandler godoc
// @Summary      Eliminar registro clínico
// @Tags         records
// @Param        recordID  path  string  true  "ID"
// @Success      204
// @Router       /records/{recordID} [delete]
func deleteRecordHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		if err := st.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		if env.Toasts != nil {
			env.Toasts.Success("Registro eliminado exitosamente")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
