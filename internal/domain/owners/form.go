package owners

import (
	"strings"

	"riavet-admin/internal/validation"
)

var schema = validation.NewSchema(
	validation.Field("fullName",
		validation.Required("El nombre completo es requerido"),
		validation.MaxLen(100, "Máximo 100 caracteres"),
	),
	validation.Field("phone", validation.MaxLen(20, "Máximo 20 caracteres")),
	validation.Field("email", validation.Optional(
		validation.Email("Email inválido"),
		validation.MaxLen(100, "Máximo 100 caracteres"),
	)...),
)

func NewForm(initial map[string]string) *validation.Form {
	return validation.NewForm(schema, validation.ValidateOnBlur, initial)
}

func FormValues(o Owner) map[string]string {
	return map[string]string{
		"fullName": o.FullName,
		"phone":    o.Phone,
		"email":    o.Email,
	}
}

func InputFromValues(v map[string]string) Input {
	return Input{
		FullName: strings.TrimSpace(v["fullName"]),
		Phone:    strings.TrimSpace(v["phone"]),
		Email:    strings.TrimSpace(v["email"]),
	}
}
