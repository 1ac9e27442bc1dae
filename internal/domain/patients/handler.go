package patients

import (
	"net/http"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"

	"github.com/go-chi/chi/v5"
)

const listPath = "/patients"

func RegisterRoutes(r chi.Router, repo Repository, env web.Env) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(repo, env))
		pr.Post("/", createPatientHandler(repo, env))
		pr.Post("/form/validate", web.ValidateFormHandler(func(*http.Request) (*validation.Form, error) {
			return NewForm(env.Clock(), nil), nil
		}))

		pr.Get("/{patientID}", getPatientHandler(repo, env))
		pr.Put("/{patientID}", updatePatientHandler(repo, env))

		// Fusión (origen = patientID)
		pr.Get("/{patientID}/merge", mergeViewHandler(repo, env))
		pr.Post("/{patientID}/merge", mergePatientsHandler(repo, env))
	})
}

type listResponse struct {
	Items []Patient `json:"items"`
	Stats Stats     `json:"stats"`
}

type mergeRequest struct {
	TargetPatientID string `json:"targetPatientId"`
	Confirm         bool   `json:"confirm"`
}

type mergeResult struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}

type confirmResponse struct {
	Error   string `json:"error"`
	Confirm string `json:"confirm"`
}

var sortFields = map[string]web.Compare[Patient]{
	"name":      web.ByString(func(p Patient) string { return p.Name }),
	"species":   web.ByString(func(p Patient) string { return p.Species }),
	"breed":     web.ByString(func(p Patient) string { return p.Breed }),
	"birthDate": web.ByString(func(p Patient) string { return p.BirthDate }),
	"createdAt": web.ByString(func(p Patient) string { return p.CreatedAt }),
}

// listPatientsHandler godoc
// @Summary      Listado de pacientes
// @Tags         patients
// @Produce      json
// @Param        search  query  string  false  "Búsqueda (backend)"
// @Param        sort    query  string  false  "Campo de orden, prefijo - para descendente"
// @Success      200  {object}  listResponse
// @Failure      503  {object}  map[string]string
// @Router       /patients [get]
func listPatientsHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())

		items, err := st.Fetch(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		if err := web.Sort(items, r.URL.Query().Get("sort"), sortFields); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		web.WriteJSON(w, http.StatusOK, listResponse{Items: items, Stats: ComputeStats(items)})
	}
}

// createPatientHandler godoc
// @Summary      Crear paciente
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body  Input  true  "Paciente"
// @Success      201  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /patients [post]
func createPatientHandler(repo Repository, env web.Env) http.HandlerFunc {
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
		p, err := st.Create(r.Context(), InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		env.Succeed(w, http.StatusCreated, "Paciente creado exitosamente", web.Mutation{Item: p, Redirect: listPath})
	}
}

// getPatientHandler godoc
// @Summary      Detalle de paciente
// @Tags         patients
// @Produce      json
// @Param        patientID  path  string  true  "ID"
// @Success      200  {object}  Patient
// @Failure      404  {object}  map[string]string
// @Router       /patients/{patientID} [get]
func getPatientHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		p, err := st.Get(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, p)
	}
}

// updatePatientHandler godoc
// @Summary      Editar paciente
// @Description  Los campos ausentes conservan el valor actual.
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        patientID  path  string  true  "ID"
// @Param        body  body  Input  true  "Cambios"
// @Success      200  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /patients/{patientID} [put]
func updatePatientHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "patientID")

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

		p, err := st.Update(r.Context(), id, InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		env.Succeed(w, http.StatusOK, "Paciente actualizado exitosamente", web.Mutation{Item: p, Redirect: listPath})
	}
}

// mergeViewHandler godoc
// @Summary      Vista de fusión
// @Tags         patients
// @Produce      json
// @Param        patientID  path  string  true  "Paciente origen"
// @Success      200  {object}  MergeView
// @Failure      404  {object}  map[string]string
// @Router       /patients/{patientID}/merge [get]
func mergeViewHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		items, err := st.Fetch(r.Context(), "")
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		view, err := BuildMergeView(items, chi.URLParam(r, "patientID"))
		if err != nil {
			env.Fail(r.Context(), w, http.StatusNotFound, err, "Paciente no encontrado")
			return
		}
		web.WriteJSON(w, http.StatusOK, view)
	}
}

// mergePatientsHandler godoc
// @Summary      Fusionar pacientes
// @Description  Requiere confirm=true. Sin confirmación responde 428 con el texto a confirmar.
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        patientID  path  string        true  "Paciente origen"
// @Param        body       body  mergeRequest  true  "Destino"
// @Success      200  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Failure      428  {object}  confirmResponse
// @Router       /patients/{patientID}/merge [post]
func mergePatientsHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		items, err := st.Fetch(r.Context(), "")
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		view, err := BuildMergeView(items, chi.URLParam(r, "patientID"))
		if err != nil {
			env.Fail(r.Context(), w, http.StatusNotFound, err, "Paciente no encontrado")
			return
		}

		if errs := view.MergeSchema().ValidateAll(map[string]string{"targetPatientId": req.TargetPatientID}); !errs.Empty() {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, &validation.ValidationError{Fields: errs}, "")
			return
		}
		target, _ := view.Candidate(req.TargetPatientID)

		if !req.Confirm {
			web.WriteJSON(w, http.StatusPreconditionRequired, confirmResponse{
				Error:   "Confirmación requerida",
				Confirm: ConfirmMessage(view.Source, target),
			})
			return
		}

		if err := st.Merge(r.Context(), view.Source.ID, target.ID); err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		env.Succeed(w, http.StatusOK, "Pacientes fusionados exitosamente", web.Mutation{
			Item:     mergeResult{SourceID: view.Source.ID, TargetID: target.ID},
			Redirect: listPath,
		})
	}
}
