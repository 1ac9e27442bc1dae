package appointments

import (
	"context"
	"net/http"

	"riavet-admin/internal/domain/veterinarians"
	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"

	"github.com/go-chi/chi/v5"
)

const listPath = "/appointments"

func RegisterRoutes(r chi.Router, repo Repository, vets veterinarians.Repository, env web.Env) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(repo, env))
		ar.Post("/", createAppointmentHandler(repo, vets, env))
		ar.Get("/form", formOptionsHandler(vets, env))
		ar.Post("/form/validate", web.ValidateFormHandler(func(r *http.Request) (*validation.Form, error) {
			options, err := activeOptions(r.Context(), vets, env)
			if err != nil {
				return nil, err
			}
			return NewForm(env.Clock(), func() []veterinarians.Option { return options }, nil), nil
		}))

		ar.Get("/{appointmentID}", getAppointmentHandler(repo, env))
		ar.Put("/{appointmentID}", updateAppointmentHandler(repo, vets, env))
		ar.Patch("/{appointmentID}/cancel", cancelAppointmentHandler(repo, env))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(repo, env))
	})
}

type listResponse struct {
	Items []Appointment `json:"items"`
	Stats Stats         `json:"stats"`
}

type formOptionsResponse struct {
	Veterinarians  []veterinarians.Option `json:"veterinarians"`
	MinScheduledAt string                 `json:"minScheduledAt"`
}

var sortFields = map[string]web.Compare[Appointment]{
	"scheduledAt": web.ByString(func(a Appointment) string { return a.ScheduledAt }),
	"status":      web.ByString(func(a Appointment) string { return string(a.Status) }),
	"patientId":   web.ByString(func(a Appointment) string { return a.PatientID }),
}

// activeOptions carga los veterinarios activos para el selector del form.
func activeOptions(ctx context.Context, vets veterinarians.Repository, env web.Env) ([]veterinarians.Option, error) {
	vs := veterinarians.NewStore(ctx, vets, nil, env.Logger())
	if _, err := vs.Fetch(ctx, veterinarians.FilterActive); err != nil {
		return nil, err
	}
	return vs.ActiveOptions(), nil
}

// listAppointmentsHandler godoc
// @Summary      Agenda
// @Tags         appointments
// @Produce      json
// @Param        veterinarianId  query  string  false  "Filtra en el backend"
// @Param        status          query  string  false  "PENDING, CONFIRMED, COMPLETED, CANCELED o ALL"
// @Param        search          query  string  false  "Paciente o veterinario"
// @Param        sort            query  string  false  "Orden"
// @Success      200  {object}  listResponse
// @Router       /appointments [get]
func listAppointmentsHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		all, err := st.Fetch(r.Context(), q.Get("veterinarianId"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}

		items := Filter(all, q.Get("status"), q.Get("search"))
		if err := web.Sort(items, q.Get("sort"), sortFields); err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		web.WriteJSON(w, http.StatusOK, listResponse{Items: items, Stats: ComputeStats(all, env.Clock()())})
	}
}

// formOptionsHandler godoc
// @Summary      Opciones del formulario de cita
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  formOptionsResponse
// @Router       /appointments/form [get]
func formOptionsHandler(vets veterinarians.Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := activeOptions(r.Context(), vets, env)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, "Error al cargar los veterinarios")
			return
		}
		web.WriteJSON(w, http.StatusOK, formOptionsResponse{
			Veterinarians:  options,
			MinScheduledAt: env.Clock()().Format("2006-01-02T15:04"),
		})
	}
}

// createAppointmentHandler godoc
// @Summary      Agendar cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body  Input  true  "Cita"
// @Success      201  {object}  web.Mutation
// @Failure      422  {object}  map[string]any
// @Router       /appointments [post]
func createAppointmentHandler(repo Repository, vets veterinarians.Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := web.DecodeValues(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, err, "")
			return
		}

		options, err := activeOptions(r.Context(), vets, env)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, "Error al cargar los veterinarios")
			return
		}

		form := NewForm(env.Clock(), func() []veterinarians.Option { return options }, nil)
		form.Load(values)
		valid, err := form.Submit()
		if err != nil {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, err, "")
			return
		}

		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		a, err := st.Create(r.Context(), InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusCreated, "Cita creada exitosamente", web.Mutation{Item: a, Redirect: listPath})
	}
}

// getAppointmentHandler godoc
// @Summary      Detalle de cita
// @Tags         appointments
// @Produce      json
// @Param        appointmentID  path  string  true  "ID"
// @Success      200  {object}  Appointment
// @Router       /appointments/{appointmentID} [get]
func getAppointmentHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		a, err := st.Get(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		web.WriteJSON(w, http.StatusOK, a)
	}
}

// updateAppointmentHandler godoc
// @Summary      Reprogramar cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointmentID  path  string  true  "ID"
// @Param        body  body  Input  true  "Cambios"
// @Success      200  {object}  web.Mutation
// @Router       /appointments/{appointmentID} [put]
func updateAppointmentHandler(repo Repository, vets veterinarians.Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "appointmentID")

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

		options, err := activeOptions(r.Context(), vets, env)
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, "Error al cargar los veterinarios")
			return
		}

		form := NewForm(env.Clock(), func() []veterinarians.Option { return options }, FormValues(current))
		form.Load(values)
		valid, err := form.Submit()
		if err != nil {
			env.Fail(r.Context(), w, http.StatusUnprocessableEntity, err, "")
			return
		}

		a, err := st.Update(r.Context(), id, InputFromValues(valid))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusOK, "Cita actualizada exitosamente", web.Mutation{Item: a, Redirect: listPath})
	}
}

// cancelAppointmentHandler godoc
// @Summary      Cancelar cita
// @Tags         appointments
// @Produce      json
// @Param        appointmentID  path  string  true  "ID"
// @Success      200  {object}  web.Mutation
// @Router       /appointments/{appointmentID}/cancel [patch]
func cancelAppointmentHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		a, err := st.Cancel(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		env.Succeed(w, http.StatusOK, "Cita cancelada exitosamente", web.Mutation{Item: a})
	}
}

// deleteAppointmentHandler godoc
// @Summary      Eliminar cita
// @Tags         appointments
// @Param        appointmentID  path  string  true  "ID"
// @Success      204
// @Router       /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(repo Repository, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := NewStore(r.Context(), repo, env.Recorder, env.Logger())
		if err := st.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			env.Fail(r.Context(), w, web.Status(err), err, st.Err())
			return
		}
		if env.Toasts != nil {
			env.Toasts.Success("Cita eliminada exitosamente")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
