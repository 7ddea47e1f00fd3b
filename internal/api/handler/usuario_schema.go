package handler

import "strings"

// --- Request types ---

type createUsuarioRequest struct {
	Nombres           string `json:"nombres"           validate:"required,min=2,max=100"`
	Apellidos         string `json:"apellidos"         validate:"required,min=2,max=100"`
	CorreoElectronico string `json:"correoElectronico" validate:"required,email"`
	Contrasena        string `json:"contrasena"        validate:"required,min=6"`
	Rol               string `json:"rol"               validate:"required"`
}

func (r *createUsuarioRequest) normalize() {
	r.Nombres = strings.TrimSpace(r.Nombres)
	r.Apellidos = strings.TrimSpace(r.Apellidos)
	r.CorreoElectronico = strings.ToLower(strings.TrimSpace(r.CorreoElectronico))
}

// updateUsuarioRequest uses pointer fields so that only fields present in the
// body are validated and applied.
type updateUsuarioRequest struct {
	Nombres           *string `json:"nombres"           validate:"omitempty,min=2,max=100"`
	Apellidos         *string `json:"apellidos"         validate:"omitempty,min=2,max=100"`
	CorreoElectronico *string `json:"correoElectronico" validate:"omitempty,email"`
	Contrasena        *string `json:"contrasena"        validate:"omitempty,min=6"`
	Rol               *string `json:"rol"`
	Activo            *bool   `json:"activo"`
}

func (r *updateUsuarioRequest) normalize() {
	if r.Nombres != nil {
		n := strings.TrimSpace(*r.Nombres)
		r.Nombres = &n
	}
	if r.Apellidos != nil {
		a := strings.TrimSpace(*r.Apellidos)
		r.Apellidos = &a
	}
	if r.CorreoElectronico != nil {
		c := strings.ToLower(strings.TrimSpace(*r.CorreoElectronico))
		r.CorreoElectronico = &c
	}
}

// --- Response types ---

// usuarioResponse is the wire shape of a user. There is deliberately no
// contrasena field, so a password can never leak into a payload. Rol carries
// the expanded role, or null when the stored reference no longer resolves.
type usuarioResponse struct {
	ID                string       `json:"id"`
	Nombres           string       `json:"nombres"`
	Apellidos         string       `json:"apellidos"`
	CorreoElectronico string       `json:"correoElectronico"`
	Rol               *rolResponse `json:"rol"`
	Activo            bool         `json:"activo"`
	FechaRegistro     string       `json:"fechaRegistro"`
}
