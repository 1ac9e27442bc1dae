package veterinarians

import (
	"strings"

	"riavet-admin/internal/validation"
)

var schema = validation.NewSchema(
	validation.Field("firstName", validation.Required("El nombre es requerido")),
	validation.Field("lastName", validation.Required("El apellido es requerido")),
	validation.Field("email",
		validation.Required("El email es requerido"),
		validation.Email("Email inválido"),
	),
	validation.Field("phoneNumber"),
	validation.Field("licenseNumber", validation.Required("El número de licencia es requerido")),
	validation.Field("specialization"),
)

func NewForm(initial map[string]string) *validation.Form {
	return validation.NewForm(schema, validation.ValidateOnBlur, initial)
}

func FormValues(v Veterinarian) map[string]string {
	return map[string]string{
		"firstName":      v.FirstName,
		"lastName":       v.LastName,
		"email":          v.Email,
		"phoneNumber":    v.PhoneNumber,
		"licenseNumber":  v.LicenseNumber,
		"specialization": v.Specialization,
	}
}

// InputFromValues recorta todo; teléfono y especialización vacíos se omiten.
func InputFromValues(v map[string]string) Input {
	return Input{
		FirstName:      strings.TrimSpace(v["firstName"]),
		LastName:       strings.TrimSpace(v["lastName"]),
		Email:          strings.TrimSpace(v["email"]),
		PhoneNumber:    strings.TrimSpace(v["phoneNumber"]),
		LicenseNumber:  strings.TrimSpace(v["licenseNumber"]),
		Specialization: strings.TrimSpace(v["specialization"]),
	}
}
