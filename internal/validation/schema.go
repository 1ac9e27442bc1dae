package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type FieldRules struct {
	Name  string
	Rules Rules
}

func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// Schema mantiene el orden de declaración de los campos.
type Schema []FieldRules

func NewSchema(fields ...FieldRules) Schema {
	return Schema(fields)
}

func (s Schema) Fields() []string {
	out := make([]string, 0, len(s))
	for _, f := range s {
		out = append(out, f.Name)
	}
	return out
}

func (s Schema) rules(field string) (Rules, bool) {
	for _, f := range s {
		if f.Name == field {
			return f.Rules, true
		}
	}
	return nil, false
}

// Validate evalúa un solo campo. Campos sin reglas siempre pasan.
func (s Schema) Validate(field, value string) string {
	rs, ok := s.rules(field)
	if !ok {
		return ""
	}
	return rs.Validate(value)
}

// ValidateAll junta el primer mensaje de cada campo que falla.
func (s Schema) ValidateAll(values map[string]string) Errors {
	errs := Errors{}
	for _, f := range s {
		if msg := f.Rules.Validate(values[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// Errors: campo -> mensaje.
type Errors map[string]string

func (e Errors) Empty() bool { return len(e) == 0 }

// ValidationError es un error del lado del cliente; nunca llega al backend.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValuesFromJSON pasa un body JSON decodificado a los valores string de un form.
// Los números se formatean sin exponente; null queda vacío.
func ValuesFromJSON(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}
