// Package web junta lo que antes estaba duplicado en cada handler
// (writeJSON, decode, mapeo de errores) ahora que hay seis módulos.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"riavet-admin/internal/platform/httpclient"
	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/resource"
	"riavet-admin/internal/toast"
	"riavet-admin/internal/validation"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Env son las dependencias compartidas por los handlers de cada módulo.
type Env struct {
	Toasts   *toast.Notifier
	Recorder resource.Recorder
	Log      logger.Logger
	Now      func() time.Time
}

func (e Env) Clock() validation.Clock {
	if e.Now == nil {
		return time.Now
	}
	return e.Now
}

func (e Env) Logger() logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}

// Mutation es la respuesta de create/update: el item confirmado y a dónde
// debería navegar la consola.
type Mutation struct {
	Item     any    `json:"item"`
	Redirect string `json:"redirect,omitempty"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields validation.Errors `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeValues lee un body JSON plano y lo pasa a valores de formulario.
func DecodeValues(r *http.Request) (map[string]string, error) {
	var raw map[string]any
	if err := DecodeJSON(r, &raw); err != nil {
		return nil, err
	}
	return validation.ValuesFromJSON(raw), nil
}

func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json", ErrInvalidInput)
	}
	return nil
}

// Status traduce los errores comunes a HTTP. Los módulos resuelven antes
// sus propios sentinels.
func Status(err error) int {
	var (
		verr   *validation.ValidationError
		apiErr *httpclient.APIError
		netErr *httpclient.NetworkError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, resource.ErrStale):
		return http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		if apiErr.Status >= 400 && apiErr.Status <= 599 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	case errors.As(err, &netErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError responde con status y mensaje. msg es el texto para el usuario
// (normalmente store.Err()); si viene vacío se usa el del error.
func WriteError(w http.ResponseWriter, status int, err error, msg string) {
	resp := errorResponse{Error: msg}
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
		if resp.Error == "" {
			resp.Error = "Revisa los campos marcados"
		}
	}
	if resp.Error == "" {
		resp.Error = err.Error()
	}
	WriteJSON(w, status, resp)
}

// Fail responde un error de backend/store y, salvo validación o vista
// cancelada, deja un toast de error.
func (e Env) Fail(ctx context.Context, w http.ResponseWriter, status int, err error, msg string) {
	var verr *validation.ValidationError
	if !errors.As(err, &verr) && !errors.Is(err, resource.ErrStale) && e.Toasts != nil && msg != "" {
		e.Toasts.Error(msg)
	}
	if status >= 500 {
		e.Logger().Warn("request failed", map[string]any{
			"status":     status,
			"error":      err.Error(),
			"request_id": chimw.GetReqID(ctx),
		})
	}
	WriteError(w, status, err, msg)
}

// Succeed deja el toast de éxito y responde la mutación.
func (e Env) Succeed(w http.ResponseWriter, status int, message string, m Mutation) {
	if e.Toasts != nil && message != "" {
		e.Toasts.Success(message)
	}
	WriteJSON(w, status, m)
}
