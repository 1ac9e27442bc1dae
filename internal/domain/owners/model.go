package owners

type Owner struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Input: phone y email vacíos no se mandan.
type Input struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Stats struct {
	Total     int `json:"total"`
	WithEmail int `json:"withEmail"`
	WithPhone int `json:"withPhone"`
}
