package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invensys/inventory-api/internal/api/metrics"
	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

// RolHandler handles HTTP requests for role operations.
type RolHandler struct {
	service ports.RolService
	dev     bool
}

func NewRolHandler(service ports.RolService, dev bool) *RolHandler {
	return &RolHandler{service: service, dev: dev}
}

// Create handles POST /api/roles.
//
// @Summary      Create a new role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      createRolRequest  true  "Role details"
// @Success      201   {object}  respuesta
// @Failure      400   {object}  respuesta
// @Failure      500   {object}  respuesta
// @Router       /api/roles [post]
func (h *RolHandler) Create(c echo.Context) error {
	var req createRolRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Petición inválida")
	}
	if req.Nombre == "" || req.Descripcion == "" {
		return respondError(c, http.StatusBadRequest, "Los campos nombre y descripción son obligatorios")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	rol, err := h.service.Create(c.Request().Context(), toCreateRolInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrNombreRolDuplicado) {
			return respondError(c, http.StatusBadRequest, "Ya existe un rol con ese nombre")
		}
		metrics.StoreErrorsTotal.WithLabelValues("crear_rol").Inc()
		return respondInternal(c, "Error al crear el rol", err, h.dev)
	}

	return respondData(c, http.StatusCreated, "Rol creado exitosamente", toRolResponse(rol))
}

// List handles GET /api/roles with an optional activo filter.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Param        activo  query     bool  false  "Filter by active state"
// @Success      200     {object}  respuesta
// @Failure      500     {object}  respuesta
// @Router       /api/roles [get]
func (h *RolHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context(), ports.ListRolesInput{
		Activo: parseActivo(c),
	})
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("listar_roles").Inc()
		return respondInternal(c, "Error al obtener los roles", err, h.dev)
	}

	return respondList(c, len(roles), toRolResponses(roles))
}

// Get handles GET /api/roles/:id.
//
// @Summary      Get a role by id
// @Tags         roles
// @Produce      json
// @Param        id  path      string  true  "Role id"
// @Success      200  {object}  respuesta
// @Failure      400  {object}  respuesta
// @Failure      404  {object}  respuesta
// @Router       /api/roles/{id} [get]
func (h *RolHandler) Get(c echo.Context) error {
	rol, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDInvalido):
			return respondError(c, http.StatusBadRequest, "ID de rol inválido")
		case errors.Is(err, domain.ErrRolNoEncontrado):
			return respondError(c, http.StatusNotFound, "Rol no encontrado")
		}
		metrics.StoreErrorsTotal.WithLabelValues("obtener_rol").Inc()
		return respondInternal(c, "Error al obtener el rol", err, h.dev)
	}

	return respondData(c, http.StatusOK, "", toRolResponse(rol))
}

// Update handles PUT /api/roles/:id. Only fields present in the body are
// validated and applied.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Role id"
// @Param        body  body      updateRolRequest  true  "Fields to update"
// @Success      200   {object}  respuesta
// @Failure      400   {object}  respuesta
// @Failure      404   {object}  respuesta
// @Router       /api/roles/{id} [put]
func (h *RolHandler) Update(c echo.Context) error {
	var req updateRolRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Petición inválida")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	rol, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateRolInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDInvalido):
			return respondError(c, http.StatusBadRequest, "ID de rol inválido")
		case errors.Is(err, domain.ErrRolNoEncontrado):
			return respondError(c, http.StatusNotFound, "Rol no encontrado")
		case errors.Is(err, domain.ErrNombreRolDuplicado):
			return respondError(c, http.StatusBadRequest, "Ya existe un rol con ese nombre")
		}
		metrics.StoreErrorsTotal.WithLabelValues("actualizar_rol").Inc()
		return respondInternal(c, "Error al actualizar el rol", err, h.dev)
	}

	return respondData(c, http.StatusOK, "Rol actualizado exitosamente", toRolResponse(rol))
}

// Delete handles DELETE /api/roles/:id. The removal is permanent and does not
// check for usuarios still referencing the role.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Param        id  path      string  true  "Role id"
// @Success      200  {object}  respuesta
// @Failure      400  {object}  respuesta
// @Failure      404  {object}  respuesta
// @Router       /api/roles/{id} [delete]
func (h *RolHandler) Delete(c echo.Context) error {
	rol, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIDInvalido):
			return respondError(c, http.StatusBadRequest, "ID de rol inválido")
		case errors.Is(err, domain.ErrRolNoEncontrado):
			return respondError(c, http.StatusNotFound, "Rol no encontrado")
		}
		metrics.StoreErrorsTotal.WithLabelValues("eliminar_rol").Inc()
		return respondInternal(c, "Error al eliminar el rol", err, h.dev)
	}

	return respondData(c, http.StatusOK, "Rol eliminado exitosamente", toRolResponse(rol))
}

// parseActivo reads the optional activo query parameter. Any value other than
// the literal "true" filters for inactive records.
func parseActivo(c echo.Context) *bool {
	if !c.QueryParams().Has("activo") {
		return nil
	}
	activo := c.QueryParam("activo") == "true"
	return &activo
}
