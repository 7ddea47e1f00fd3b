package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/invensys/inventory-api/internal/api/metrics"
	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

type UsuarioService struct {
	repo   ports.UsuarioRepository
	roles  ports.RolLookup
	logger zerolog.Logger
}

func NewUsuarioService(repo ports.UsuarioRepository, roles ports.RolLookup, logger zerolog.Logger) *UsuarioService {
	return &UsuarioService{repo: repo, roles: roles, logger: logger}
}

// Create persists a new user after resolving the role reference. The password
// is stored as given; hashing is out of scope for this service.
func (s *UsuarioService) Create(ctx context.Context, input ports.CreateUsuarioInput) (*ports.UsuarioConRol, error) {
	rol, err := s.resolveRol(ctx, input.RolID)
	if err != nil {
		return nil, err
	}

	usuario := &domain.Usuario{
		Nombres:           strings.TrimSpace(input.Nombres),
		Apellidos:         strings.TrimSpace(input.Apellidos),
		CorreoElectronico: normalizeCorreo(input.CorreoElectronico),
		Contrasena:        input.Contrasena,
		RolID:             input.RolID,
		Activo:            true,
		FechaRegistro:     time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, usuario)
	if err != nil {
		s.logger.Error().Err(err).Str("correo", usuario.CorreoElectronico).Msg("failed to create usuario")
		return nil, err
	}

	metrics.UsuariosCreadosTotal.Inc()
	s.logger.Info().
		Str("usuario_id", created.ID).
		Str("nombre", created.NombreCompleto()).
		Str("rol_id", rol.ID).
		Msg("usuario created")
	return &ports.UsuarioConRol{Usuario: created, Rol: rol}, nil
}

// List returns users matching the optional filters, most recent first, each
// with its role expanded. Roles are fetched once per distinct reference.
func (s *UsuarioService) List(ctx context.Context, input ports.ListUsuariosInput) ([]*ports.UsuarioConRol, error) {
	usuarios, err := s.repo.Find(ctx, ports.ListUsuariosFilter{Activo: input.Activo, RolID: input.RolID})
	if err != nil {
		return nil, err
	}

	cache := make(map[string]*domain.Rol)
	result := make([]*ports.UsuarioConRol, 0, len(usuarios))
	for _, u := range usuarios {
		rol, ok := cache[u.RolID]
		if !ok {
			rol = s.expandRol(ctx, u.RolID)
			cache[u.RolID] = rol
		}
		result = append(result, &ports.UsuarioConRol{Usuario: u, Rol: rol})
	}
	return result, nil
}

func (s *UsuarioService) Get(ctx context.Context, id string) (*ports.UsuarioConRol, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UsuarioConRol{Usuario: usuario, Rol: s.expandRol(ctx, usuario.RolID)}, nil
}

// Update applies the provided fields and returns the post-update user with
// its role expanded. When the role reference is among the fields, its
// existence is verified before anything is written.
func (s *UsuarioService) Update(ctx context.Context, id string, input ports.UpdateUsuarioInput) (*ports.UsuarioConRol, error) {
	if input.RolID != nil {
		if _, err := s.resolveRol(ctx, *input.RolID); err != nil {
			return nil, err
		}
	}

	var correo *string
	if input.CorreoElectronico != nil {
		c := normalizeCorreo(*input.CorreoElectronico)
		correo = &c
	}

	updated, err := s.repo.Update(ctx, id, ports.UsuarioUpdate{
		Nombres:           trimmed(input.Nombres),
		Apellidos:         trimmed(input.Apellidos),
		CorreoElectronico: correo,
		Contrasena:        input.Contrasena,
		RolID:             input.RolID,
		Activo:            input.Activo,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("usuario_id", updated.ID).Msg("usuario updated")
	return &ports.UsuarioConRol{Usuario: updated, Rol: s.expandRol(ctx, updated.RolID)}, nil
}

// Delete removes the user permanently and returns the removed document.
func (s *UsuarioService) Delete(ctx context.Context, id string) (*ports.UsuarioConRol, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.UsuariosEliminadosTotal.Inc()
	s.logger.Info().Str("usuario_id", deleted.ID).Msg("usuario deleted")
	return &ports.UsuarioConRol{Usuario: deleted, Rol: s.expandRol(ctx, deleted.RolID)}, nil
}

// resolveRol verifies that a role reference points at an existing role before
// a write is attempted. Any lookup miss, including a malformed identifier,
// surfaces as ErrRolInexistente so the caller gets a single failure mode.
func (s *UsuarioService) resolveRol(ctx context.Context, rolID string) (*domain.Rol, error) {
	rol, err := s.roles.FindByID(ctx, rolID)
	if err != nil {
		if errors.Is(err, domain.ErrRolNoEncontrado) || errors.Is(err, domain.ErrIDInvalido) {
			return nil, domain.ErrRolInexistente
		}
		return nil, err
	}
	return rol, nil
}

// expandRol resolves a stored role reference for a response payload. A
// dangling reference (role deleted after the user was written) yields nil
// rather than an error; reads must keep working.
func (s *UsuarioService) expandRol(ctx context.Context, rolID string) *domain.Rol {
	rol, err := s.roles.FindByID(ctx, rolID)
	if err != nil {
		if !errors.Is(err, domain.ErrRolNoEncontrado) && !errors.Is(err, domain.ErrIDInvalido) {
			s.logger.Warn().Err(err).Str("rol_id", rolID).Msg("rol expansion failed")
		}
		return nil
	}
	return rol
}

func normalizeCorreo(correo string) string {
	return strings.ToLower(strings.TrimSpace(correo))
}
