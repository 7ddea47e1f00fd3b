package handler

import (
	"time"

	"github.com/labstack/echo/v4"
)

// respuesta is the uniform response envelope used by every endpoint.
type respuesta struct {
	Success  bool   `json:"success"`
	Mensaje  string `json:"mensaje,omitempty"`
	Cantidad *int   `json:"cantidad,omitempty"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
}

func respondData(c echo.Context, status int, mensaje string, data any) error {
	return c.JSON(status, respuesta{Success: true, Mensaje: mensaje, Data: data})
}

// respondList includes cantidad alongside the payload. Cantidad is a pointer
// so that a zero count still serializes.
func respondList(c echo.Context, cantidad int, data any) error {
	return c.JSON(200, respuesta{Success: true, Cantidad: &cantidad, Data: data})
}

func respondError(c echo.Context, status int, mensaje string) error {
	return c.JSON(status, respuesta{Success: false, Mensaje: mensaje})
}

// respondInternal renders a 500. The underlying error detail is exposed only
// in development mode.
func respondInternal(c echo.Context, mensaje string, err error, dev bool) error {
	r := respuesta{Success: false, Mensaje: mensaje}
	if dev && err != nil {
		r.Error = err.Error()
	}
	return c.JSON(500, r)
}

// formatFecha renders a timestamp as an es-ES locale date
// (day/month/year, no leading zeros).
func formatFecha(t time.Time) string {
	return t.Format("2/1/2006")
}
