package records

import (
	"maps"
	"strings"

	"riavet-admin/internal/validation"
)

var optionalFields = []string{"procedures", "attachments", "medicalOrders", "prescription"}

func statusOptions() []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func Schema(clock validation.Clock) validation.Schema {
	return validation.NewSchema(
		validation.Field("patientId",
			validation.Required("El ID del paciente es requerido"),
			validation.ID("El ID del paciente debe ser alfanumérico"),
		),
		validation.Field("veterinarianId",
			validation.Required("El ID del veterinario es requerido"),
			validation.ID("El ID del veterinario debe ser alfanumérico"),
		),
		validation.Field("diagnosis",
			validation.Required("El diagnóstico es requerido"),
			validation.MinLen(10, "El diagnóstico debe tener al menos 10 caracteres"),
		),
		validation.Field("followUpDate", validation.Optional(
			validation.Date("Formato de fecha inválido (yyyy-mm-dd)"),
			validation.DateNotPast(clock, "La fecha de seguimiento debe ser futura"),
		)...),
		validation.Field("status", validation.Optional(
			validation.OneOf(statusOptions, "Estado inválido"),
		)...),
	)
}

// NewForm arranca con status PENDING salvo que initial diga otra cosa.
func NewForm(clock validation.Clock, initial map[string]string) *validation.Form {
	values := map[string]string{"status": string(StatusPending)}
	maps.Copy(values, initial)
	return validation.NewForm(Schema(clock), validation.ValidateOnBlur, values)
}

func FormValues(r ClinicalRecord) map[string]string {
	followUp := r.FollowUpDate
	if len(followUp) > len(validation.DateLayout) {
		followUp = followUp[:len(validation.DateLayout)]
	}
	return map[string]string{
		"patientId":      r.PatientID,
		"veterinarianId": r.VeterinarianID,
		"diagnosis":      r.Diagnosis,
		"procedures":     r.Procedures,
		"attachments":    r.Attachments,
		"medicalOrders":  r.MedicalOrders,
		"prescription":   r.Prescription,
		"followUpDate":   followUp,
		"status":         string(r.Status),
	}
}

// InputFromValues recorta todo; los opcionales en blanco quedan vacíos y
// se omiten del payload.
func InputFromValues(v map[string]string) Input {
	trimmed := make(map[string]string, len(optionalFields))
	for _, f := range optionalFields {
		trimmed[f] = strings.TrimSpace(v[f])
	}
	status := Status(strings.TrimSpace(v["status"]))
	if status == "" {
		status = StatusPending
	}
	return Input{
		PatientID:      strings.TrimSpace(v["patientId"]),
		VeterinarianID: strings.TrimSpace(v["veterinarianId"]),
		Diagnosis:      strings.TrimSpace(v["diagnosis"]),
		Procedures:     trimmed["procedures"],
		Attachments:    trimmed["attachments"],
		MedicalOrders:  trimmed["medicalOrders"],
		Prescription:   trimmed["prescription"],
		FollowUpDate:   strings.TrimSpace(v["followUpDate"]),
		Status:         status,
	}
}
