package validation

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	idRe    = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// Rule es un par (predicado, mensaje). Check recibe el valor crudo del campo.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Rules se evalúan en orden; gana el primer fallo.
type Rules []Rule

// Validate devuelve el mensaje de la primera regla que falla, o "".
func (rs Rules) Validate(value string) string {
	for _, r := range rs {
		if r.Check == nil {
			continue
		}
		if !r.Check(value) {
			return r.Message
		}
	}
	return ""
}

// Clock se inyecta en las reglas de fecha para poder testearlas.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func isBlank(v string) bool { return strings.TrimSpace(v) == "" }

func Required(msg string) Rule {
	return Rule{Check: func(v string) bool { return !isBlank(v) }, Message: msg}
}

// MinLen cuenta runas sobre el valor sin espacios en los extremos.
func MinLen(n int, msg string) Rule {
	return Rule{Check: func(v string) bool {
		return utf8.RuneCountInString(strings.TrimSpace(v)) >= n
	}, Message: msg}
}

func MaxLen(n int, msg string) Rule {
	return Rule{Check: func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	}, Message: msg}
}

func Pattern(re *regexp.Regexp, msg string) Rule {
	return Rule{Check: func(v string) bool { return re.MatchString(v) }, Message: msg}
}

func Email(msg string) Rule {
	return Rule{Check: IsEmail, Message: msg}
}

func UUID(msg string) Rule {
	return Rule{Check: IsValidUUID, Message: msg}
}

// ID acepta letras, dígitos, guion y guion bajo.
func ID(msg string) Rule {
	return Pattern(idRe, msg)
}

func Date(msg string) Rule {
	return Rule{Check: func(v string) bool {
		_, ok := parseDate(v)
		return ok
	}, Message: msg}
}

// DateNotFuture falla si la fecha es posterior a hoy. Si no parsea, lo
// reporta la regla Date.
func DateNotFuture(clock Clock, msg string) Rule {
	return Rule{Check: func(v string) bool {
		d, ok := parseDate(v)
		if !ok {
			return true
		}
		return !d.After(startOfDay(clock.now()))
	}, Message: msg}
}

// DateNotPast falla si la fecha es anterior al inicio de hoy.
func DateNotPast(clock Clock, msg string) Rule {
	return Rule{Check: func(v string) bool {
		d, ok := parseDate(v)
		if !ok {
			return true
		}
		return !d.Before(startOfDay(clock.now()))
	}, Message: msg}
}

// DateTimeInFuture exige un instante estrictamente posterior a ahora.
// Acepta RFC3339 o el formato de input datetime-local (sin zona, hora local).
func DateTimeInFuture(clock Clock, msg string) Rule {
	return Rule{Check: func(v string) bool {
		t, ok := ParseDateTime(v)
		if !ok {
			return false
		}
		return t.After(clock.now())
	}, Message: msg}
}

func Number(msg string) Rule {
	return Rule{Check: func(v string) bool {
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	}, Message: msg}
}

// NumberRange: min exclusivo, max inclusivo.
func NumberRange(min, max float64, msg string) Rule {
	return Rule{Check: func(v string) bool {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return false
		}
		return f > min && f <= max
	}, Message: msg}
}

// OneOf valida contra las opciones ofrecidas al momento de validar.
func OneOf(options func() []string, msg string) Rule {
	return Rule{Check: func(v string) bool {
		return slices.Contains(options(), strings.TrimSpace(v))
	}, Message: msg}
}

// Optional envuelve reglas para que no se evalúen con el campo vacío.
func Optional(rules ...Rule) Rules {
	out := make(Rules, 0, len(rules))
	for _, r := range rules {
		check := r.Check
		out = append(out, Rule{Check: func(v string) bool {
			if isBlank(v) {
				return true
			}
			return check == nil || check(v)
		}, Message: r.Message})
	}
	return out
}

func IsEmail(v string) bool {
	return emailRe.MatchString(v)
}

// IsValidUUID acepta exactamente la forma 8-4-4-4-12 en hex, sin importar mayúsculas.
func IsValidUUID(v string) bool {
	if len(v) != 36 {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}

func IsValidDiagnosis(v string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(v)) >= 10
}

func parseDate(v string) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(v), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParseDateTime acepta RFC3339 y "2006-01-02T15:04" (hora local).
func ParseDateTime(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
