package ports

import (
	"context"

	"github.com/invensys/inventory-api/internal/core/domain"
)

// ListUsuariosFilter carries the optional query parameters for listing users.
type ListUsuariosFilter struct {
	Activo *bool  // nil = no filter
	RolID  string // empty = no filter
}

// UsuarioUpdate describes a partial update. Nil fields are left untouched.
type UsuarioUpdate struct {
	Nombres           *string
	Apellidos         *string
	CorreoElectronico *string
	Contrasena        *string
	RolID             *string
	Activo            *bool
}

// UsuarioRepository defines persistence operations for users.
type UsuarioRepository interface {
	Insert(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	FindByID(ctx context.Context, id string) (*domain.Usuario, error)
	// Find returns users matching filter, sorted descending by fechaRegistro.
	Find(ctx context.Context, filter ListUsuariosFilter) ([]*domain.Usuario, error)
	// Update applies the non-nil fields and returns the post-update document.
	Update(ctx context.Context, id string, update UsuarioUpdate) (*domain.Usuario, error)
	// Delete removes the user permanently and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.Usuario, error)
}
