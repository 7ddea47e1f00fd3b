package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/invensys/inventory-api/internal/api/metrics"
	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

type RolService struct {
	repo   ports.RolRepository
	cache  ports.RolCacheInvalidator
	logger zerolog.Logger
}

// NewRolService builds the role use-cases. cache may be nil when no role
// cache is configured.
func NewRolService(repo ports.RolRepository, cache ports.RolCacheInvalidator, logger zerolog.Logger) *RolService {
	return &RolService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new role. Permisos defaults to the standard read-only set
// when omitted. Uniqueness of nombre is enforced by the store.
func (s *RolService) Create(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error) {
	permisos := input.Permisos
	if len(permisos) == 0 {
		permisos = domain.DefaultPermisos
	}

	rol := &domain.Rol{
		Nombre:        strings.TrimSpace(input.Nombre),
		Descripcion:   strings.TrimSpace(input.Descripcion),
		Permisos:      permisos,
		Activo:        true,
		FechaCreacion: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, rol)
	if err != nil {
		s.logger.Error().Err(err).Str("nombre", rol.Nombre).Msg("failed to create rol")
		return nil, err
	}

	metrics.RolesCreadosTotal.Inc()
	s.logger.Info().Str("rol_id", created.ID).Str("nombre", created.Nombre).Msg("rol created")
	return created, nil
}

// List returns all roles matching the optional activo filter, sorted by nombre.
func (s *RolService) List(ctx context.Context, input ports.ListRolesInput) ([]*domain.Rol, error) {
	return s.repo.Find(ctx, ports.ListRolesFilter{Activo: input.Activo})
}

func (s *RolService) Get(ctx context.Context, id string) (*domain.Rol, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the provided fields and returns the post-update role.
// String fields are trimmed before persisting, matching Create.
func (s *RolService) Update(ctx context.Context, id string, input ports.UpdateRolInput) (*domain.Rol, error) {
	update := ports.RolUpdate{
		Nombre:      trimmed(input.Nombre),
		Descripcion: trimmed(input.Descripcion),
		Permisos:    input.Permisos,
		Activo:      input.Activo,
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, updated.ID)
	}
	s.logger.Info().Str("rol_id", updated.ID).Msg("rol updated")
	return updated, nil
}

// Delete removes the role permanently. No check is made for usuarios still
// referencing it; their stored reference is left dangling.
func (s *RolService) Delete(ctx context.Context, id string) (*domain.Rol, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, deleted.ID)
	}
	metrics.RolesEliminadosTotal.Inc()
	s.logger.Info().Str("rol_id", deleted.ID).Str("nombre", deleted.Nombre).Msg("rol deleted")
	return deleted, nil
}

// trimmed returns a pointer to the trimmed value, preserving nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
