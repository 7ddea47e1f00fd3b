package ports

import (
	"context"

	"github.com/invensys/inventory-api/internal/core/domain"
)

// ListRolesFilter carries the optional query parameters for listing roles.
type ListRolesFilter struct {
	Activo *bool // nil = no filter
}

// RolUpdate describes a partial update. Nil fields are left untouched.
type RolUpdate struct {
	Nombre      *string
	Descripcion *string
	Permisos    *[]string
	Activo      *bool
}

// RolRepository defines persistence operations for roles.
type RolRepository interface {
	Insert(ctx context.Context, rol *domain.Rol) (*domain.Rol, error)
	FindByID(ctx context.Context, id string) (*domain.Rol, error)
	// Find returns roles matching filter, sorted ascending by nombre.
	Find(ctx context.Context, filter ListRolesFilter) ([]*domain.Rol, error)
	// Update applies the non-nil fields and returns the post-update document.
	Update(ctx context.Context, id string, update RolUpdate) (*domain.Rol, error)
	// Delete removes the role permanently and returns the removed document.
	Delete(ctx context.Context, id string) (*domain.Rol, error)
}

// RolLookup is the read-only capability the usuario use-cases need to resolve
// a role reference. Satisfied by the Mongo repository and, when configured, by
// the Redis read-through cache wrapping it.
type RolLookup interface {
	FindByID(ctx context.Context, id string) (*domain.Rol, error)
}

// RolCacheInvalidator drops a cached role entry after a mutation. A nil
// implementation means no cache is configured.
type RolCacheInvalidator interface {
	Invalidate(ctx context.Context, id string)
}
