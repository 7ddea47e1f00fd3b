package handler

import (
	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

// --- Domain → Response ---

func toRolResponse(rol *domain.Rol) *rolResponse {
	if rol == nil {
		return nil
	}
	return &rolResponse{
		ID:            rol.ID,
		Nombre:        rol.Nombre,
		Descripcion:   rol.Descripcion,
		Permisos:      rol.Permisos,
		Activo:        rol.Activo,
		FechaCreacion: formatFecha(rol.FechaCreacion),
	}
}

func toRolResponses(roles []*domain.Rol) []*rolResponse {
	out := make([]*rolResponse, 0, len(roles))
	for _, rol := range roles {
		out = append(out, toRolResponse(rol))
	}
	return out
}

func toUsuarioResponse(u *ports.UsuarioConRol) *usuarioResponse {
	return &usuarioResponse{
		ID:                u.Usuario.ID,
		Nombres:           u.Usuario.Nombres,
		Apellidos:         u.Usuario.Apellidos,
		CorreoElectronico: u.Usuario.CorreoElectronico,
		Rol:               toRolResponse(u.Rol),
		Activo:            u.Usuario.Activo,
		FechaRegistro:     formatFecha(u.Usuario.FechaRegistro),
	}
}

func toUsuarioResponses(usuarios []*ports.UsuarioConRol) []*usuarioResponse {
	out := make([]*usuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return out
}

// --- Request → Service input ---

func toCreateRolInput(req createRolRequest) ports.CreateRolInput {
	return ports.CreateRolInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Permisos:    req.Permisos,
	}
}

func toUpdateRolInput(req updateRolRequest) ports.UpdateRolInput {
	return ports.UpdateRolInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Permisos:    req.Permisos,
		Activo:      req.Activo,
	}
}

func toCreateUsuarioInput(req createUsuarioRequest) ports.CreateUsuarioInput {
	return ports.CreateUsuarioInput{
		Nombres:           req.Nombres,
		Apellidos:         req.Apellidos,
		CorreoElectronico: req.CorreoElectronico,
		Contrasena:        req.Contrasena,
		RolID:             req.Rol,
	}
}

func toUpdateUsuarioInput(req updateUsuarioRequest) ports.UpdateUsuarioInput {
	return ports.UpdateUsuarioInput{
		Nombres:           req.Nombres,
		Apellidos:         req.Apellidos,
		CorreoElectronico: req.CorreoElectronico,
		Contrasena:        req.Contrasena,
		RolID:             req.Rol,
		Activo:            req.Activo,
	}
}
