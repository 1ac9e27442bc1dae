package records

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

var statuses = []Status{StatusPending, StatusActive, StatusCompleted, StatusCancelled}

func ParseStatus(s string) (Status, bool) {
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// ClinicalRecord tal como lo devuelve el servicio de registros (sin updatedAt).
type ClinicalRecord struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	VeterinarianID string `json:"veterinarianId"`
	Diagnosis      string `json:"diagnosis"`
	Procedures     string `json:"procedures,omitempty"`
	Attachments    string `json:"attachments,omitempty"`
	MedicalOrders  string `json:"medicalOrders,omitempty"`
	Prescription   string `json:"prescription,omitempty"`
	FollowUpDate   string `json:"followUpDate,omitempty"`
	Status         Status `json:"status"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Input: los opcionales en blanco no viajan.
type Input struct {
	PatientID      string `json:"patientId"`
	VeterinarianID string `json:"veterinarianId"`
	Diagnosis      string `json:"diagnosis"`
	Procedures     string `json:"procedures,omitempty"`
	Attachments    string `json:"attachments,omitempty"`
	MedicalOrders  string `json:"medicalOrders,omitempty"`
	Prescription   string `json:"prescription,omitempty"`
	FollowUpDate   string `json:"followUpDate,omitempty"`
	Status         Status `json:"status,omitempty"`
}

type Query struct {
	PatientID string
	Status    Status
}

// Stats es el resumen por estado del dashboard.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
