package ports

import (
	"context"

	"github.com/invensys/inventory-api/internal/core/domain"
)

// CreateUsuarioInput carries all data needed to create a new user.
type CreateUsuarioInput struct {
	Nombres           string
	Apellidos         string
	CorreoElectronico string
	Contrasena        string
	RolID             string
}

// UpdateUsuarioInput carries a partial update. Nil fields are not modified.
type UpdateUsuarioInput struct {
	Nombres           *string
	Apellidos         *string
	CorreoElectronico *string
	Contrasena        *string
	RolID             *string
	Activo            *bool
}

// ListUsuariosInput carries the optional filters for the list endpoint.
type ListUsuariosInput struct {
	Activo *bool
	RolID  string
}

// UsuarioConRol pairs a user with its resolved role. Rol is nil when the
// stored reference no longer resolves (the role was deleted afterwards).
type UsuarioConRol struct {
	Usuario *domain.Usuario
	Rol     *domain.Rol
}

// UsuarioService defines use-case operations for users. Every result carries
// the expanded role so the transport layer never reaches into the store.
type UsuarioService interface {
	Create(ctx context.Context, input CreateUsuarioInput) (*UsuarioConRol, error)
	List(ctx context.Context, input ListUsuariosInput) ([]*UsuarioConRol, error)
	Get(ctx context.Context, id string) (*UsuarioConRol, error)
	Update(ctx context.Context, id string, input UpdateUsuarioInput) (*UsuarioConRol, error)
	Delete(ctx context.Context, id string) (*UsuarioConRol, error)
}
