package router

import (
	"net/http"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/toast"

	"github.com/go-chi/chi/v5"
)

type toastsResponse struct {
	Items []toast.Toast `json:"items"`
}

func registerToastRoutes(r chi.Router, n *toast.Notifier) {
	r.Get("/toasts", listToastsHandler(n))
	r.Delete("/toasts/{toastID}", dismissToastHandler(n))
}

// listToastsHandler godoc
// @Summary      Avisos pendientes
// @Tags         toasts
// @Produce      json
// @Success      200  {object}  toastsResponse
// @Router       /toasts [get]
func listToastsHandler(n *toast.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, toastsResponse{Items: n.List()})
	}
}

// dismissToastHandler godoc
// @Summary      Descartar aviso
// @Tags         toasts
// @Produce      json
// @Param        toastID  path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /toasts/{toastID} [delete]
func dismissToastHandler(n *toast.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !n.Remove(chi.URLParam(r, "toastID")) {
			web.WriteError(w, http.StatusNotFound, web.ErrNotFound, "Aviso no encontrado")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
