package veterinarians

import (
	"fmt"
	"net/http"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"

	"github.com/go-chi/chi/v5"
)

const listPath = "/veterinarians"

func RegisterRoutes(r chi.Router, repo Repository, env web.Env) {
	r.Route("/veterinarians", func(vr chi.Router) {
		vr.Get("/", listVeterinariansHandler(repo, env))
		vr.Post("/", createVeterinarianHandler(repo, env))
		vr.Post("/form/validate", web.ValidateFormHandler(func(*http.Request) (*validation.Form, error) {
			return NewForm(nil), nil
		}))
		vr.Get("/email/{email}", getByEmailHandler(repo, env))

		vr.Get("/{vetID}", getVeterinarianHandler(repo, env))
		vr.Put("/{vetID}", updateVeterinarianHandler(repo, env))
		vr.Patch("/{vetID}/deactivate", deactivateVeterinarianHandler(repo, env))
		vr.Delete("/{vetID}", deleteVeterinarianHandler(repo, env))
	})
}

type listResponse struct {
	Filter ActiveFilter   `json:"filter"`
	Items  []Veterinarian `json:"items"`
	Stats  Stats          `json:"stats"`
}

var sortFields = map[string]web.Compare[Veterinarian]{
	"firstName":      web.ByString(func(v Veterinarian) string { return v.FirstName }),
	"lastName":       web.ByString(func(v Veterinarian) string { return v.LastName }),
	"email":          web.ByString(func(v Veterinarian) string { return v.Email }),
	"licenseNumber":  web.ByString(func(v Veterinarian) string { return v.LicenseNumber }),
	"specialization": web.ByString(func(v Veterinarian) string { return v.Specialization }),
}

// listVeterinariansHandler godoc
// @Summary      Listado de veterinarios
// @Tags         veterinarians
// @Produce      json
// @Param        status  query  string  false  "ACTIVE (default), INACTIVE o ALL"
// @Param        search  query  string  false  "Nombre, apellido, email, licencia o especialización"
// @Param        sort    query  string  false  "Orden"
// @Success      200  {object}  listResponse
// @Router       /veterinarians [get]
func listVeterinariansHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, ok := ParseActiveFilter(q.Get("status"))
		if !ok {
			web.WriteError(w, http.StatusBadRequest, fmt.Errorf("%w: status", web.ErrInvalidInput), "Filtro de estado inválido")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		fetched, err := st.Fetch(r.Context(), filter)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		items := Search(web.Filter(fetched, filter.Keep), q.Get("search"))
		if err := web.Sort(items, q.Get("sort"), sortFields); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		web.WriteJSON(w, http.StatusOK, listResponse{Filter: filter, Items: items, Stats: ComputeStats(fetched)})
	}
}

// createVeterinarianHandler godoc
// @Summary      Crear veterinario
// @Tags         veterinarians
// @Accept       json
// @Produce      json
// @Param        body  body  Input  true  "Veterinario"
// @Success      201  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /veterinarians [post]
func createVeterinarianHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := web.DecodeValues(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		form := NewForm(nil)
		form.Load(values)
		valid, err := form.Submit()
		if err != nil {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, err, "")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		v, err := st.Create(r.Context(), InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusCreated, "Veterinario creado exitosamente", web.Mutation{Item: v, Redirect: listPath})
	}
}

// getVeterinarianHandler godoc
// @Summary      Detalle de veterinario
// @Tags         veterinarians
// @Produce      json
// @Param        vetID  path  string  true  "ID"
// @Success      200  {object}  Veterinarian
// @Router       /veterinarians/{vetID} [get]
func getVeterinarianHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		v, err := st.Get(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, v)
	}
}

// getByEmailHandler godoc
// @Summary      Buscar veterinario por email
// @Tags         veterinarians
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200  {object}  Veterinarian
// @Router       /veterinarians/email/{email} [get]
func getByEmailHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		v, err := st.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, v)
	}
}

// updateVeterinarianHandler godoc
// @Summary      Editar veterinario
// @Tags         veterinarians
// @Accept       json
// @Produce      json
// @Param        vetID  path  string  true  "ID"
// @Param        body  body  Input  true  "Cambios"
// @Success      200  {object}  web.Mutation
// @Router       /veterinarians/{vetID} [put]
func updateVeterinarianHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "vetID")

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

		form := NewForm(FormValues(current))
		form.Load(values)
		valid, err := form.Submit()
		if err != nil {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, err, "")
			return
		}

		in := InputFromValues(valid)
		active := current.Active
		in.Active = &active

		v, err := st.Update(r.Context(), id, in)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusOK, "Veterinario actualizado exitosamente", web.Mutation{Item: v, Redirect: listPath})
	}
}

// deactivateVeterinarianHandler godoc
// @Summary      Desactivar veterinario
// @Tags         veterinarians
// @Produce      json
// @Param        vetID  path  string  true  "ID"
// @Success      200  {object}  web.Mutation
// @Router       /veterinarians/{vetID}/deactivate [patch]
func deactivateVeterinarianHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		v, err := st.Deactivate(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusOK, "Veterinario desactivado exitosamente", web.Mutation{Item: v})
	}
}

// deleteVeterinarianHandler godoc
// @Summary      Eliminar veterinario
// @Tags         veterinarians
// @Param        vetID  path  string  true  "ID"
// @Success      204
// @Router       /veterinarians/{vetID} [delete]
func deleteVeterinarianHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		if err := st.Delete(r.Context(), chi.URLParam(r, "vetID")); err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		if env.Toasts != nil {
			env.Toasts.Success("Veterinario eliminado exitosamente")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
