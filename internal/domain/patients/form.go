package patients

import (
	"strings"

	"riavet-admin/internal/validation"
)

func Schema(clock validation.Clock) validation.Schema {
	return validation.NewSchema(
		validation.Field("name", validation.Required("El nombre es requerido")),
		validation.Field("species", validation.Required("La especie es requerida")),
		validation.Field("breed", validation.Required("La raza es requerida")),
		validation.Field("birthDate",
			validation.Required("La fecha de nacimiento es requerida"),
			validation.Date("Formato de fecha inválido (yyyy-mm-dd)"),
			validation.DateNotFuture(clock, "La fecha de nacimiento no puede ser futura"),
		),
		validation.Field("ownerId",
			validation.Required("El ID del dueño es requerido"),
			validation.UUID("Formato UUID inválido. Debe ser: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"),
		),
	)
}

func NewForm(clock validation.Clock, initial map[string]string) *validation.Form {
	return validation.NewForm(Schema(clock), validation.ValidateOnBlur, initial)
}

// FormValues precarga el form de edición.
func FormValues(p Patient) map[string]string {
	return map[string]string{
		"name":      p.Name,
		"species":   p.Species,
		"breed":     p.Breed,
		"birthDate": p.BirthDate,
		"ownerId":   p.OwnerID,
	}
}

func InputFromValues(v map[string]string) Input {
	return Input{
		Name:      strings.TrimSpace(v["name"]),
		Species:   strings.TrimSpace(v["species"]),
		Breed:     strings.TrimSpace(v["breed"]),
		BirthDate: strings.TrimSpace(v["birthDate"]),
		OwnerID:   strings.TrimSpace(v["ownerId"]),
	}
}
