package activity

import "time"

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Entry es una mutación confirmada por un backend.
type Entry struct {
	ID       string    `json:"id"`
	Entity   string    `json:"entity"`
	Action   string    `json:"action"`
	EntityID string    `json:"entityId"`
	Operator string    `json:"operator"`
	At       time.Time `json:"at"`
}

// ClampLimit aplica el default y el máximo de Recent.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}
