package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/invensys/inventory-api/internal/core/domain"
)

// errorEnvelope mirrors the envelope the handlers emit, extended with the
// route fields reported on unmatched paths.
type errorEnvelope struct {
	Success    bool   `json:"success"`
	Mensaje    string `json:"mensaje"`
	Ruta       string `json:"ruta,omitempty"`
	Metodo     string `json:"metodo,omitempty"`
	Sugerencia string `json:"sugerencia,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders unmatched routes as the uniform "Ruta no encontrada" envelope
//     naming the requested path and method.
//   - Maps domain errors that escaped a handler to their HTTP status codes.
//   - Logs anything unexpected and renders a generic 500; the underlying
//     detail is exposed only in development mode.
func NewHTTPErrorHandler(log zerolog.Logger, dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Router misses and wrong-method requests both get the same 404
		// payload.
		if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
			_ = c.JSON(http.StatusNotFound, errorEnvelope{
				Success:    false,
				Mensaje:    "Ruta no encontrada",
				Ruta:       c.Request().URL.Path,
				Metodo:     c.Request().Method,
				Sugerencia: "Verifica la documentación de la API",
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorEnvelope{Success: false, Mensaje: fmt.Sprintf("%v", he.Message)})
			return
		}

		// Handlers map domain errors themselves; this is the safety net for
		// any that escape.
		if code, mensaje := resolveDomainError(err); code != 0 {
			_ = c.JSON(code, errorEnvelope{Success: false, Mensaje: mensaje})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		envelope := errorEnvelope{Success: false, Mensaje: "Error interno del servidor"}
		if dev {
			envelope.Error = err.Error()
		} else {
			envelope.Error = "Contacte al administrador"
		}
		_ = c.JSON(http.StatusInternalServerError, envelope)
	}
}

func resolveDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrIDInvalido):
		return http.StatusBadRequest, "Identificador inválido"
	case errors.Is(err, domain.ErrRolNoEncontrado):
		return http.StatusNotFound, "Rol no encontrado"
	case errors.Is(err, domain.ErrUsuarioNoEncontrado):
		return http.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrNombreRolDuplicado):
		return http.StatusBadRequest, "Ya existe un rol con ese nombre"
	case errors.Is(err, domain.ErrCorreoDuplicado):
		return http.StatusBadRequest, "El correo electrónico ya está registrado"
	case errors.Is(err, domain.ErrRolInexistente):
		return http.StatusBadRequest, "El rol especificado no existe"
	}
	return 0, ""
}
