package invoices

import (
	"math"
	"strconv"
	"strings"

	"riavet-admin/internal/validation"
)

const maxTotal = 999999.99

var schema = validation.NewSchema(
	validation.Field("patientId", validation.Required("El paciente es requerido")),
	validation.Field("total",
		validation.NumberRange(0, math.MaxFloat64, "El total debe ser mayor a 0"),
		validation.NumberRange(0, maxTotal, "El total no puede superar $999,999.99"),
	),
	validation.Field("items",
		validation.Required("Los items son requeridos"),
		validation.MaxLen(500, "Máximo 500 caracteres"),
	),
)

func Schema() validation.Schema { return schema }

// NewForm revalida en cada cambio una vez tocado el campo.
func NewForm(initial map[string]string) *validation.Form {
	return validation.NewForm(schema, validation.ValidateOnChange, initial)
}

func FormValues(inv Invoice) map[string]string {
	return map[string]string{
		"patientId": inv.PatientID,
		"total":     strconv.FormatFloat(inv.Total, 'f', -1, 64),
		"items":     inv.Items,
	}
}

// InputFromValues asume valores ya validados.
func InputFromValues(v map[string]string) Input {
	total, _ := strconv.ParseFloat(strings.TrimSpace(v["total"]), 64)
	return Input{
		PatientID: strings.TrimSpace(v["patientId"]),
		Total:     total,
		Items:     strings.TrimSpace(v["items"]),
	}
}
