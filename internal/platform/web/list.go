package web

import (
	"cmp"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"riavet-admin/internal/validation"
)

// Compare ordena dos items por un campo.
type Compare[T any] func(a, b T) int

func ByString[T any](get func(T) string) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func ByFloat[T any](get func(T) float64) Compare[T] {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

// Sort ordena in place según sort=<campo> o sort=-<campo> (descendente).
// Vacío no toca el orden que vino del store.
func Sort[T any](items []T, sort string, fields map[string]Compare[T]) error {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		return nil
	}
	desc := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")

	compare, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidInput, key)
	}
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return nil
}

// Matches: búsqueda local case-insensitive sobre varios campos.
func Matches(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// Filter devuelve los items que cumplen keep, sin modificar el slice original.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

type validateRequest struct {
	Values map[string]any `json:"values"`
	Field  string         `json:"field"`
}

type validateResponse struct {
	Field  string            `json:"field,omitempty"`
	Error  string            `json:"error,omitempty"`
	Errors validation.Errors `json:"errors"`
	Valid  bool              `json:"valid"`
}

// ValidateFormHandler valida en vivo un formulario: con field simula el blur
// de ese campo, sin field corre la validación completa del submit.
func ValidateFormHandler(newForm func(r *http.Request) (*validation.Form, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRequest
		if err := DecodeJSON(r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, err, "invalid json")
			return
		}

		form, err := newForm(r)
		if err != nil {
			WriteError(w, Status(err), err, "")
			return
		}
		form.Load(validation.ValuesFromJSON(req.Values))

		if f := strings.TrimSpace(req.Field); f != "" {
			msg := form.Blur(f)
			WriteJSON(w, http.StatusOK, validateResponse{
				Field:  f,
				Error:  msg,
				Errors: form.Errors(),
				Valid:  msg == "",
			})
			return
		}

		_, err = form.Submit()
		WriteJSON(w, http.StatusOK, validateResponse{
			Errors: form.Errors(),
			Valid:  err == nil,
		})
	}
}
