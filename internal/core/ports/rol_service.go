package ports

import (
	"context"

	"github.com/invensys/inventory-api/internal/core/domain"
)

// CreateRolInput carries the data needed to create a new role.
type CreateRolInput struct {
	Nombre      string
	Descripcion string
	// Permisos is optional; when empty the service applies the default set.
	Permisos []string
}

// UpdateRolInput carries a partial update. Nil fields are not modified.
type UpdateRolInput struct {
	Nombre      *string
	Descripcion *string
	Permisos    *[]string
	Activo      *bool
}

// ListRolesInput carries the optional filters for the list endpoint.
type ListRolesInput struct {
	Activo *bool
}

// RolService defines use-case operations for roles.
type RolService interface {
	Create(ctx context.Context, input CreateRolInput) (*domain.Rol, error)
	List(ctx context.Context, input ListRolesInput) ([]*domain.Rol, error)
	Get(ctx context.Context, id string) (*domain.Rol, error)
	Update(ctx context.Context, id string, input UpdateRolInput) (*domain.Rol, error)
	Delete(ctx context.Context, id string) (*domain.Rol, error)
}
