package patients

// Patient es la copia local de lo que devuelve el servicio de pacientes.
// Las fechas quedan como string ISO tal cual las manda el backend.
type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birthDate"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Input son los campos escribibles (POST y PUT).
type Input struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birthDate"`
	OwnerID   string `json:"ownerId"`
}

type Stats struct {
	Total  int `json:"total"`
	Dogs   int `json:"dogs"`
	Cats   int `json:"cats"`
	Others int `json:"others"`
}
