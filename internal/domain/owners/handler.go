package owners

import (
	"net/http"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"

	"github.com/go-chi/chi/v5"
)

const listPath = "/owners"

func RegisterRoutes(r chi.Router, repo Repository, env web.Env) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(repo, env))
		or.Post("/", createOwnerHandler(repo, env))
		or.Post("/form/validate", web.ValidateFormHandler(func(*http.Request) (*validation.Form, error) {
			return NewForm(nil), nil
		}))

		or.Get("/{ownerID}", getOwnerHandler(repo, env))
		or.Put("/{ownerID}", updateOwnerHandler(repo, env))
		or.Delete("/{ownerID}", deleteOwnerHandler(repo, env))
	})
}

type listResponse struct {
	Items []Owner `json:"items"`
	Stats Stats   `json:"stats"`
}

var sortFields = map[string]web.Compare[Owner]{
	"fullName":  web.ByString(func(o Owner) string { return o.FullName }),
	"email":     web.ByString(func(o Owner) string { return o.Email }),
	"createdAt": web.ByString(func(o Owner) string { return o.CreatedAt }),
}

// listOwnersHandler godoc
// @Summary      Listado de propietarios
// @Description  search se manda al backend y además filtra localmente por nombre, email o teléfono.
// @Tags         owners
// @Produce      json
// @Param        search  query  string  false  "Búsqueda"
// @Param        sort    query  string  false  "Orden"
// @Success      200  {object}  listResponse
// @Router       /owners [get]
func listOwnersHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		all, err := st.Fetch(r.Context(), search)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		items := Search(all, search)
		if err := web.Sort(items, r.URL.Query().Get("sort"), sortFields); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		web.WriteJSON(w, http.StatusOK, listResponse{Items: items, Stats: ComputeStats(all)})
	}
}

// createOwnerHandler godoc
// @Summary      Crear propietario
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        body  body  Input  true  "Propietario"
// @Success      201  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /owners [post]
func createOwnerHandler(repo Repository, env web.Env) http.HandlerFunc {
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
		o, err := st.Create(r.Context(), InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusCreated, "Propietario creado exitosamente", web.Mutation{Item: o, Redirect: listPath})
	}
}

// getOwnerHandler godoc
// @Summary      Detalle de propietario
// @Tags         owners
// @Produce      json
// @Param        ownerID  path  string  true  "ID"
// @Success      200  {object}  Owner
// @Router       /owners/{ownerID} [get]
func getOwnerHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		o, err := st.Get(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, o)
	}
}

// updateOwnerHandler godoc
// @Summary      Editar propietario
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        ownerID  path  string  true  "ID"
// @Param        body  body  Input  true  "Cambios"
// @Success      200  {object}  web.Mutation
// @Router       /owners/{ownerID} [put]
func updateOwnerHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "ownerID")

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

		o, err := st.Update(r.Context(), id, InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusOK, "Propietario actualizado exitosamente", web.Mutation{Item: o, Redirect: listPath})
	}
}

// deleteOwnerHandler godoc
// @Summary      Eliminar propietario (soft delete)
// @Tags         owners
// @Param        ownerID  path  string  true  "ID"
// @Success      204
// @Router       /owners/{ownerID} [delete]
func deleteOwnerHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		if err := st.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		if env.Toasts != nil {
			env.Toasts.Success("Propietario eliminado exitosamente")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
