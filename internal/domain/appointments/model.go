package appointments

import "riavet-admin/internal/domain/veterinarians"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Appointment struct {
	ID             string                      `json:"id"`
	PatientID      string                      `json:"patientId"`
	VeterinarianID string                      `json:"veterinarianId"`
	Veterinarian   *veterinarians.Veterinarian `json:"veterinarian,omitempty"`
	ScheduledAt    string                      `json:"scheduledAt"`
	Status         Status                      `json:"status"`
	CreatedAt      string                      `json:"createdAt,omitempty"`
	UpdatedAt      string                      `json:"updatedAt,omitempty"`
}

// Input: scheduledAt va en ISO-8601 UTC.
type Input struct {
	PatientID      string `json:"patientId"`
	VeterinarianID string `json:"veterinarianId"`
	ScheduledAt    string `json:"scheduledAt"`
}

type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Today     int `json:"today"`
}
