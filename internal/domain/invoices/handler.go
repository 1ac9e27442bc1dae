package invoices

import (
	"fmt"
	"net/http"
	"strings"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"

	"github.com/go-chi/chi/v5"
)

const listPath = "/invoices"

func RegisterRoutes(r chi.Router, repo Repository, env web.Env) {
	r.Route("/invoices", func(ir chi.Router) {
		ir.Get("/", listInvoicesHandler(repo, env))
		ir.Post("/", createInvoiceHandler(repo, env))
		ir.Post("/form/validate", web.ValidateFormHandler(func(*http.Request) (*validation.Form, error) {
			return NewForm(nil), nil
		}))

		ir.Get("/{invoiceID}", getInvoiceHandler(repo, env))
		ir.Put("/{invoiceID}", updateInvoiceHandler(repo, env))
		ir.Post("/{invoiceID}/status", changeStatusHandler(repo, env))
		ir.Delete("/{invoiceID}", deleteInvoiceHandler(repo, env))
	})
}

type listResponse struct {
	Items []Row `json:"items"`
	Stats Stats `json:"stats"`
}

type statusRequest struct {
	Status Status `json:"status"`
}

var sortFields = map[string]web.Compare[Invoice]{
	"date":      web.ByString(func(inv Invoice) string { return inv.Date }),
	"total":     web.ByFloat(func(inv Invoice) float64 { return inv.Total }),
	"status":    web.ByString(func(inv Invoice) string { return string(inv.Status) }),
	"patientId": web.ByString(func(inv Invoice) string { return inv.PatientID }),
}

// failMessage prefiere el mensaje de los rechazos locales sobre el del store.
func failMessage(st *Store, err error) string {
	if msg := ConflictMessage(err); msg != "" {
		return msg
	}
	return st.Err()
}

// listInvoicesHandler godoc
// @Summary      Listado de facturas
// @Description  Cada fila trae las acciones disponibles según su estado.
// @Tags         invoices
// @Produce      json
// @Param        status     query  string  false  "DRAFT, SENT, PAID, CANCELED o ALL"
// @Param        patientId  query  string  false  "Filtra en el backend"
// @Param        search     query  string  false  "ID, paciente o items"
// @Param        sort       query  string  false  "Orden"
// @Success      200  {object}  listResponse
// @Router       /invoices [get]
func listInvoicesHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		status := strings.ToUpper(strings.TrimSpace(q.Get("status")))
		if _, ok := ParseStatus(status); status != "" && status != "ALL" && !ok {
			web.WriteError(w, http.StatusBadRequest, fmt.Errorf("%w: status", web.ErrInvalidInput), "Filtro de estado inválido")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		all, err := st.Fetch(r.Context(), Query{PatientID: q.Get("patientId")})
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		items := Filter(all, status, q.Get("search"))
		if err := web.Sort(items, q.Get("sort"), sortFields); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		web.WriteJSON(w, http.StatusOK, listResponse{Items: Rows(items), Stats: ComputeStats(all)})
	}
}

// createInvoiceHandler godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  Input  true  "Factura"
// @Success      201  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /invoices [post]
func createInvoiceHandler(repo Repository, env web.Env) http.HandlerFunc {
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
		inv, err := st.Create(r.Context(), InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusCreated, "Factura creada exitosamente", web.Mutation{Item: Row{Invoice: inv, Actions: Actions(inv.Status)}, Redirect: listPath})
	}
}

// getInvoiceHandler godoc
// @Summary      Detalle de factura
// @Tags         invoices
// @Produce      json
// @Param        invoiceID  path  string  true  "ID"
// @Success      200  {object}  Row
// @Router       /invoices/{invoiceID} [get]
func getInvoiceHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		inv, err := st.Get(r.Context(), chi.URLParam(r, "invoiceID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, Row{Invoice: inv, Actions: Actions(inv.Status)})
	}
}

// updateInvoiceHandler godoc
// @Summary      Editar factura en borrador
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoiceID  path  string  true  "ID"
// @Param        body  body  Input  true  "Cambios"
// @Success      200  {object}  web.Mutation
// @Failure      409  {object}  map[string]any
// @Router       /invoices/{invoiceID} [put]
func updateInvoiceHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "invoiceID")

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

		inv, err := st.Update(r.Context(), id, InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, failMessage(st, err))
			return
		}
		env.Succeed(w, http.StatusOK, "Factura actualizada exitosamente", web.Mutation{Item: Row{Invoice: inv, Actions: Actions(inv.Status)}, Redirect: listPath})
	}
}

// changeStatusHandler godoc
// @Summary      Cambiar estado de factura
// @Description  DRAFT→SENT→PAID; DRAFT o SENT→CANCELED. Otras transiciones devuelven 409.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoiceID  path  string         true  "ID"
// @Param        body       body  statusRequest  true  "Nuevo estado"
// @Success      200  {object}  web.Mutation
// @Failure      409  {object}  map[string]any
// @Router       /invoices/{invoiceID}/status [post]
func changeStatusHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}
		to, ok := ParseStatus(strings.ToUpper(string(req.Status)))
		if !ok {
			web.WriteError(w, http.StatusBadRequest, fmt.Errorf("%w: status", web.ErrInvalidInput), "Estado inválido")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		inv, err := st.ChangeStatus(r.Context(), chi.URLParam(r, "invoiceID"), to)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, failMessage(st, err))
			return
		}
		env.Succeed(w, http.StatusOK, "Estado de la factura actualizado", web.Mutation{Item: Row{Invoice: inv, Actions: Actions(inv.Status)}})
	}
}

// deleteInvoiceHandler godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Produce      json
// @Param        invoiceID  path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  map[string]any
// @Router       /invoices/{invoiceID} [delete]
func deleteInvoiceHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		if err := st.Delete(r.Context(), chi.URLParam(r, "invoiceID")); err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, failMessage(st, err))
			return
		}
		if env.Toasts != nil {
			env.Toasts.Success("Factura eliminada exitosamente")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
