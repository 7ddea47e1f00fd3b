package domain

import (
	"errors"
	"time"
)

// DefaultPermisos is applied when a role is created without explicit permissions.
var DefaultPermisos = []string{"leer"}

var ErrRolNoEncontrado = errors.New("rol no encontrado")
var ErrNombreRolDuplicado = errors.New("ya existe un rol con ese nombre")
var ErrIDInvalido = errors.New("identificador inválido")

// Rol is a named permission bundle assignable to users.
type Rol struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	Permisos      []string  `json:"permisos"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}
