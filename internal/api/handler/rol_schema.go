package handler

import "strings"

// --- Request types ---

type createRolRequest struct {
	Nombre      string   `json:"nombre"      validate:"required,min=3,max=50"`
	Descripcion string   `json:"descripcion" validate:"required,max=200"`
	Permisos    []string `json:"permisos"`
}

// normalize trims string fields before validation so length bounds apply to
// the trimmed value, as the persistence schema specifies.
func (r *createRolRequest) normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Descripcion = strings.TrimSpace(r.Descripcion)
}

// updateRolRequest uses pointer fields so that only fields present in the
// body are validated and applied.
type updateRolRequest struct {
	Nombre      *string   `json:"nombre"      validate:"omitempty,min=3,max=50"`
	Descripcion *string   `json:"descripcion" validate:"omitempty,max=200"`
	Permisos    *[]string `json:"permisos"`
	Activo      *bool     `json:"activo"`
}

func (r *updateRolRequest) normalize() {
	if r.Nombre != nil {
		n := strings.TrimSpace(*r.Nombre)
		r.Nombre = &n
	}
	if r.Descripcion != nil {
		d := strings.TrimSpace(*r.Descripcion)
		r.Descripcion = &d
	}
}

// --- Response types ---

// rolResponse is the wire shape of a role. FechaCreacion carries the
// locale-formatted date, never the raw timestamp.
type rolResponse struct {
	ID            string   `json:"id"`
	Nombre        string   `json:"nombre"`
	Descripcion   string   `json:"descripcion"`
	Permisos      []string `json:"permisos"`
	Activo        bool     `json:"activo"`
	FechaCreacion string   `json:"fechaCreacion"`
}
