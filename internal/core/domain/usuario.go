package domain

import (
	"errors"
	"time"
)

var ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
var ErrCorreoDuplicado = errors.New("el correo electrónico ya está registrado")
var ErrRolInexistente = errors.New("el rol especificado no existe")

// Usuario is an account record referencing exactly one Rol.
//
// Contrasena is stored verbatim; hashing is a documented limitation. The field
// is excluded from JSON so it can never leak into a response payload.
type Usuario struct {
	ID                string    `json:"id"`
	Nombres           string    `json:"nombres"`
	Apellidos         string    `json:"apellidos"`
	CorreoElectronico string    `json:"correoElectronico"`
	Contrasena        string    `json:"-"`
	RolID             string    `json:"-"`
	Activo            bool      `json:"activo"`
	FechaRegistro     time.Time `json:"fechaRegistro"`
}

// NombreCompleto returns the user's full display name.
func (u *Usuario) NombreCompleto() string {
	return u.Nombres + " " + u.Apellidos
}
