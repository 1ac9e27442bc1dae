package validation

import "maps"

type Mode int

const (
	// ValidateOnBlur: un campo se valida al salir de él y en el submit.
	ValidateOnBlur Mode = iota
	// ValidateOnChange: además revalida en cada cambio una vez tocado.
	ValidateOnChange
)

// Form guarda el estado de un formulario: valores, campos tocados y errores.
// No es seguro para uso concurrente; cada request arma el suyo.
type Form struct {
	schema  Schema
	mode    Mode
	values  map[string]string
	touched map[string]bool
	errors  Errors
}

func NewForm(schema Schema, mode Mode, initial map[string]string) *Form {
	f := &Form{
		schema:  schema,
		mode:    mode,
		values:  map[string]string{},
		touched: map[string]bool{},
		errors:  Errors{},
	}
	for _, name := range schema.Fields() {
		f.values[name] = ""
	}
	maps.Copy(f.values, initial)
	return f
}

// Set actualiza un valor. En modo blur limpia el error del campo; en modo
// change lo revalida si el campo ya fue tocado.
func (f *Form) Set(field, value string) {
	f.values[field] = value

	if f.mode == ValidateOnChange && f.touched[field] {
		f.setError(field, f.schema.Validate(field, value))
		return
	}
	delete(f.errors, field)
}

// Load aplica varios valores como si se tipearan, sin tocar campos.
func (f *Form) Load(values map[string]string) {
	for k, v := range values {
		f.Set(k, v)
	}
}

// Blur marca el campo como tocado y lo valida. Devuelve el mensaje o "".
func (f *Form) Blur(field string) string {
	f.touched[field] = true
	msg := f.schema.Validate(field, f.values[field])
	f.setError(field, msg)
	return msg
}

// Submit toca todos los campos y valida el form completo.
// Devuelve *ValidationError si algún campo falla; el caller no debe
// llamar al backend en ese caso.
func (f *Form) Submit() (map[string]string, error) {
	for _, name := range f.schema.Fields() {
		f.touched[name] = true
	}
	f.errors = f.schema.ValidateAll(f.values)
	if !f.errors.Empty() {
		return nil, &ValidationError{Fields: maps.Clone(f.errors)}
	}
	return f.Values(), nil
}

func (f *Form) Value(field string) string { return f.values[field] }

func (f *Form) Values() map[string]string { return maps.Clone(f.values) }

func (f *Form) Touched(field string) bool { return f.touched[field] }

func (f *Form) Error(field string) string { return f.errors[field] }

func (f *Form) Errors() Errors { return maps.Clone(f.errors) }

func (f *Form) setError(field, msg string) {
	if msg == "" {
		delete(f.errors, field)
		return
	}
	f.errors[field] = msg
}
