package appointments

import (
	"strings"
	"time"

	"riavet-admin/internal/domain/veterinarians"
	"riavet-admin/internal/validation"
)

// Schema: el veterinario tiene que estar entre los activos ofrecidos.
func Schema(clock validation.Clock, options func() []veterinarians.Option) validation.Schema {
	ids := func() []string {
		opts := options()
		out := make([]string, 0, len(opts))
		for _, o := range opts {
			out = append(out, o.ID)
		}
		return out
	}

	return validation.NewSchema(
		validation.Field("patientId", validation.Required("El paciente es requerido")),
		validation.Field("veterinarianId",
			validation.Required("El veterinario es requerido"),
			validation.OneOf(ids, "El veterinario seleccionado no está disponible"),
		),
		validation.Field("scheduledAt",
			validation.Required("La fecha y hora son requeridas"),
			validation.DateTimeInFuture(clock, "La fecha debe ser futura"),
		),
	)
}

// NewForm revalida en cada cambio una vez tocado el campo.
func NewForm(clock validation.Clock, options func() []veterinarians.Option, initial map[string]string) *validation.Form {
	return validation.NewForm(Schema(clock, options), validation.ValidateOnChange, initial)
}

// FormValues precarga la edición con scheduledAt en formato datetime-local.
func FormValues(a Appointment) map[string]string {
	scheduled := a.ScheduledAt
	if t, ok := validation.ParseDateTime(a.ScheduledAt); ok {
		scheduled = t.In(time.Local).Format("2006-01-02T15:04")
	}
	return map[string]string{
		"patientId":      a.PatientID,
		"veterinarianId": a.VeterinarianID,
		"scheduledAt":    scheduled,
	}
}

func InputFromValues(v map[string]string) Input {
	scheduled := strings.TrimSpace(v["scheduledAt"])
	if t, ok := validation.ParseDateTime(scheduled); ok {
		scheduled = t.UTC().Format(time.RFC3339)
	}
	return Input{
		PatientID:      strings.TrimSpace(v["patientId"]),
		VeterinarianID: strings.TrimSpace(v["veterinarianId"]),
		ScheduledAt:    scheduled,
	}
}
