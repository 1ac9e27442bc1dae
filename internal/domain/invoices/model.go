package invoices

import (
	"fmt"
	"slices"

	"riavet-admin/internal/platform/web"
)

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusSent     Status = "SENT"
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

var (
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", web.ErrConflict)
	ErrDeleteNotAllowed  = fmt.Errorf("%w: only DRAFT or SENT invoices can be deleted", web.ErrConflict)
	ErrEditNotAllowed    = fmt.Errorf("%w: only DRAFT invoices can be edited", web.ErrConflict)
)

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	switch st {
	case StatusDraft, StatusSent, StatusPaid, StatusCanceled:
		return st, true
	}
	return "", false
}

// transitions: DRAFT→SENT→PAID, y CANCELED desde DRAFT o SENT.
var transitions = map[Status][]Status{
	StatusDraft: {StatusSent, StatusCanceled},
	StatusSent:  {StatusPaid, StatusCanceled},
}

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

func (s Status) Deletable() bool { return s == StatusDraft || s == StatusSent }

func (s Status) Editable() bool { return s == StatusDraft }

type Invoice struct {
	ID        string  `json:"id"`
	PatientID string  `json:"patientId"`
	Date      string  `json:"date"`
	Total     float64 `json:"total"`
	Status    Status  `json:"status"`
	Items     string  `json:"items"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type Input struct {
	PatientID string  `json:"patientId"`
	Total     float64 `json:"total"`
	Items     string  `json:"items"`
}

// UpdateInput es el PUT completo; status vacío no se envía.
type UpdateInput struct {
	PatientID string  `json:"patientId"`
	Total     float64 `json:"total"`
	Items     string  `json:"items"`
	Status    Status  `json:"status,omitempty"`
}

type Query struct {
	Status    Status
	PatientID string
}

// Action es una acción de fila disponible según el estado.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionSend   Action = "send"
	ActionPay    Action = "pay"
	ActionCancel Action = "cancel"
	ActionDelete Action = "delete"
)

// Target devuelve el estado al que lleva la acción, si es de estado.
func (a Action) Target() (Status, bool) {
	switch a {
	case ActionSend:
		return StatusSent, true
	case ActionPay:
		return StatusPaid, true
	case ActionCancel:
		return StatusCanceled, true
	}
	return "", false
}

func Actions(s Status) []Action {
	out := []Action{}
	if s.Editable() {
		out = append(out, ActionEdit)
	}
	for _, a := range []Action{ActionSend, ActionPay, ActionCancel} {
		if to, _ := a.Target(); CanTransition(s, to) {
			out = append(out, a)
		}
	}
	if s.Deletable() {
		out = append(out, ActionDelete)
	}
	return out
}

type Row struct {
	Invoice
	Actions []Action `json:"actions"`
}

type Stats struct {
	Total      int     `json:"total"`
	Draft      int     `json:"draft"`
	Sent       int     `json:"sent"`
	Paid       int     `json:"paid"`
	PaidAmount float64 `json:"paidAmount"`
}
