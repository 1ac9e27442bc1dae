package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	operatorKey    ctxKey = "operator"
	HeaderOperator        = "X-Operator"
)

// Operator toma el header X-Operator y lo deja en el contexto para atribuir
// la actividad. No autentica: sin header el request sigue igual.
func Operator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op := strings.TrimSpace(r.Header.Get(HeaderOperator))
		if op == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), op)))
	})
}

func WithOperator(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operatorKey, op)
}

func GetOperator(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(operatorKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
