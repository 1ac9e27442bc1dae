package patients

import (
	"fmt"

	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/validation"
)

const mergeWarning = "Esta acción es irreversible. Al fusionar, el paciente origen será eliminado y todos sus registros asociados serán transferidos al paciente destino."

// MergeView: origen fijo y destinos posibles (todos menos el origen).
type MergeView struct {
	Source     Patient   `json:"source"`
	Candidates []Patient `json:"candidates"`
	Warning    string    `json:"warning"`
}

func BuildMergeView(items []Patient, sourceID string) (MergeView, error) {
	v := MergeView{Warning: mergeWarning, Candidates: []Patient{}}
	found := false
	for _, p := range items {
		if p.ID == sourceID {
			v.Source = p
			found = true
			continue
		}
		v.Candidates = append(v.Candidates, p)
	}
	if !found {
		return MergeView{}, fmt.Errorf("patient %s: %w", sourceID, web.ErrNotFound)
	}
	return v, nil
}

func (v MergeView) Candidate(id string) (Patient, bool) {
	for _, p := range v.Candidates {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}

func (v MergeView) candidateIDs() []string {
	out := make([]string, 0, len(v.Candidates))
	for _, p := range v.Candidates {
		out = append(out, p.ID)
	}
	return out
}

// MergeSchema valida la selección del destino contra los candidatos.
func (v MergeView) MergeSchema() validation.Schema {
	return validation.NewSchema(
		validation.Field("targetPatientId",
			validation.Required("Selecciona el paciente destino"),
			validation.OneOf(v.candidateIDs, "El paciente destino no es válido"),
		),
	)
}

func ConfirmMessage(source, target Patient) string {
	return fmt.Sprintf("¿Estás seguro de que deseas fusionar %q con %q? Esta acción no se puede deshacer.", source.Name, target.Name)
}
