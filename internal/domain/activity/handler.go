package activity

import (
	"net/http"
	"strconv"
	"strings"

	"riavet-admin/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, env web.Env) {
	r.Get("/activity", recentHandler(svc, env))
}

type recentResponse struct {
	Items []Entry `json:"items"`
}

// recentHandler godoc
// @Summary      Actividad reciente
// @Description  Mutaciones confirmadas por los backends, más nuevas primero. Máximo 200.
// @Tags         activity
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (default 50)"
// @Success      200  {object}  recentResponse
// @Failure      400  {object}  map[string]any
// @Router       /activity [get]
func recentHandler(svc *Service, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				web.WriteError(w, http.StatusBadRequest, web.ErrInvalidInput, "limit inválido")
				return
			}
			limit = n
		}

		items, err := svc.Recent(r.Context(), limit)
		if err != nil {
			env.Fail(r.Context(), w, http.StatusInternalServerError, err, "Error al cargar la actividad")
			return
		}
		web.WriteJSON(w, http.StatusOK, recentResponse{Items: items})
	}
}
