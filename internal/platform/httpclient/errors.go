package httpclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NetworkError: no se recibió respuesta del backend (conexión rechazada,
// timeout, contexto cancelado...).
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError: el backend respondió con status no-2xx.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.Status)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// messageFromBody intenta leer {"message": ...} o {"error": ...};
// si no es JSON devuelve el body tal cual.
func messageFromBody(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(payload.Error); m != "" {
			return m
		}
		if strings.HasPrefix(body, "{") {
			return ""
		}
	}
	return body
}
