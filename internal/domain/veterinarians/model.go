package veterinarians

import "strings"

type Veterinarian struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization,omitempty"`
	Active         bool   `json:"active"`
	FullName       string `json:"fullName,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// DisplayName usa el fullName calculado por el backend si viene.
func (v Veterinarian) DisplayName() string {
	if n := strings.TrimSpace(v.FullName); n != "" {
		return n
	}
	return strings.TrimSpace(v.FirstName + " " + v.LastName)
}

type Input struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization,omitempty"`
	Active         *bool  `json:"active,omitempty"`
}

// ActiveFilter es el selector de estado del listado.
type ActiveFilter string

const (
	FilterActive   ActiveFilter = "ACTIVE"
	FilterInactive ActiveFilter = "INACTIVE"
	FilterAll      ActiveFilter = "ALL"
)

func ParseActiveFilter(s string) (ActiveFilter, bool) {
	switch ActiveFilter(strings.ToUpper(strings.TrimSpace(s))) {
	case "", FilterActive:
		return FilterActive, true
	case FilterInactive:
		return FilterInactive, true
	case FilterAll:
		return FilterAll, true
	default:
		return "", false
	}
}

// OnlyActive traduce el filtro al parámetro del backend (nil = no mandar).
func (f ActiveFilter) OnlyActive() *bool {
	switch f {
	case FilterActive:
		v := true
		return &v
	case FilterInactive:
		v := false
		return &v
	default:
		return nil
	}
}

func (f ActiveFilter) Keep(v Veterinarian) bool {
	switch f {
	case FilterActive:
		return v.Active
	case FilterInactive:
		return !v.Active
	default:
		return true
	}
}

// Option es lo que se ofrece en el selector de veterinario de las citas.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
