package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invensys/inventory-api/internal/api/metrics"
	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

// UsuarioHandler handles HTTP requests for user operations.
type UsuarioHandler struct {
	service ports.UsuarioService
	dev     bool
}

func NewUsuarioHandler(service ports.UsuarioService, dev bool) *UsuarioHandler {
	return &UsuarioHandler{service: service, dev: dev}
}

// Create handles POST /api/usuarios. The role reference is resolved before
// anything is written; a nonexistent role aborts the create.
//
// @Summary      Create a new user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      createUsuarioRequest  true  "User details"
// @Success      201   {object}  respuesta
// @Failure      400   {object}  respuesta
// @Failure      500   {object}  respuesta
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req createUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Petición inválida")
	}
	if req.Nombres == "" || req.Apellidos == "" || req.CorreoElectronico == "" || req.Contrasena == "" || req.Rol == "" {
		return respondError(c, http.StatusBadRequest, "Todos los campos son obligatorios")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	usuario, err := h.service.Create(c.Request().Context(), toCreateUsuarioInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRolInexistente):
			return respondError(c, http.StatusBadRequest, "El rol especificado no existe")
		case errors.Is(err, domain.ErrCorreoDuplicado):
			return respondError(c, http.StatusBadRequest, "El correo electrónico ya está registrado")
		}
		metrics.StoreErrorsTotal.WithLabelValues("crear_usuario").Inc()
		return respondInternal(c, "Error al crear el usuario", err, h.dev)
	}

	return respondData(c, http.StatusCreated, "Usuario creado exitosamente", toUsuarioResponse(usuario))
}

// List handles GET /api/usuarios with optional activo and rol filters.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Param        activo  query     bool    false  "Filter by active state"
// @Param        rol     query     string  false  "Filter by role id"
// @Success      200     {object}  respuesta
// @Failure      500     {object}  respuesta
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c echo.Context) error {
	usuarios, err := h.service.List(c.Request().Context(), ports.ListUsuariosInput{
		Activo: parseActivo(c),
		RolID:  c.QueryParam("rol"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrIDInvalido) {
			return respondError(c, http.StatusBadRequest, "ID de rol inválido")
		}
		metrics.StoreErrorsTotal.WithLabelValues("listar_usuarios").Inc()
		return respondInternal(c, "Error al obtener los usuarios", err, h.dev)
	}

	return respondList(c, len(usuarios), toUsuarioResponses(usuarios))
}

// Get handles GET /api/usuarios/:id.
//
// @Summary      Get a user by id
// @Tags         usuarios
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  respuesta
// @Failure      400  {object}  respuesta
// @Failure      404  {object}  respuesta
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) Get(c echo.Context) error {
	usuario, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDInvalido):
			return respondError(c, http.StatusBadRequest, "ID de usuario inválido")
		case errors.Is(err, domain.ErrUsuarioNoEncontrado):
			return respondError(c, http.StatusNotFound, "Usuario no encontrado")
		}
		metrics.StoreErrorsTotal.WithLabelValues("obtener_usuario").Inc()
		return respondInternal(c, "Error al obtener el usuario", err, h.dev)
	}

	return respondData(c, http.StatusOK, "", toUsuarioResponse(usuario))
}

// Update handles PUT /api/usuarios/:id. When the role reference is among the
// fields, its existence is re-validated before the update is applied.
//
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateUsuarioRequest  true  "Fields to update"
// @Success      200   {object}  respuesta
// @Failure      400   {object}  respuesta
// @Failure      404   {object}  respuesta
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c echo.Context) error {
	var req updateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Petición inválida")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	usuario, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateUsuarioInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRolInexistente):
			return respondError(c, http.StatusBadRequest, "El rol especificado no existe")
		case errors.Is(err, domain.ErrIDInvalido):
			return respondError(c, http.StatusBadRequest, "ID de usuario inválido")
		case errors.Is(err, domain.ErrUsuarioNoEncontrado):
			return respondError(c, http.StatusNotFound, "Usuario no encontrado")
		case errors.Is(err, domain.ErrCorreoDuplicado):
			return respondError(c, http.StatusBadRequest, "El correo electrónico ya está registrado")
		}
		metrics.StoreErrorsTotal.WithLabelValues("actualizar_usuario").Inc()
		return respondInternal(c, "Error al actualizar el usuario", err, h.dev)
	}

	return respondData(c, http.StatusOK, "Usuario actualizado exitosamente", toUsuarioResponse(usuario))
}

// Delete handles DELETE /api/usuarios/:id.
//
// @Summary      Delete a user
// @Tags         usuarios
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  respuesta
// @Failure      400  {object}  respuesta
// @Failure      404  {object}  respuesta
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c echo.Context) error {
	usuario, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDInvalido):
			return respondError(c, http.StatusBadRequest, "ID de usuario inválido")
		case errors.Is(err, domain.ErrUsuarioNoEncontrado):
			return respondError(c, http.StatusNotFound, "Usuario no encontrado")
		}
		metrics.StoreErrorsTotal.WithLabelValues("eliminar_usuario").Inc()
		return respondInternal(c, "Error al eliminar el usuario", err, h.dev)
	}

	return respondData(c, http.StatusOK, "Usuario eliminado exitosamente", toUsuarioResponse(usuario))
}
