package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// StatusHandler serves the API info and status payloads at / and /api/status.
type StatusHandler struct {
	start time.Time
}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{start: time.Now()}
}

type infoResponse struct {
	Success     bool              `json:"success"`
	Mensaje     string            `json:"mensaje"`
	Version     string            `json:"version"`
	Descripcion string            `json:"descripcion"`
	Endpoints   map[string]string `json:"endpoints"`
	Estado      string            `json:"estado"`
	BaseDatos   string            `json:"baseDatos"`
	Fecha       string            `json:"fecha"`
}

// Info handles GET / with a liveness/info payload.
func (h *StatusHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, infoResponse{
		Success:     true,
		Mensaje:     "Bienvenido a InvenSys API REST",
		Version:     "1.0.0",
		Descripcion: "API para el Sistema de Gestión de Inventario InvenSys",
		Endpoints: map[string]string{
			"usuarios": "/api/usuarios",
			"roles":    "/api/roles",
		},
		Estado:    "Activo",
		BaseDatos: "MongoDB",
		Fecha:     formatFecha(time.Now()),
	})
}

type memoriaResponse struct {
	AllocBytes      uint64 `json:"allocBytes"`
	TotalAllocBytes uint64 `json:"totalAllocBytes"`
	SysBytes        uint64 `json:"sysBytes"`
	NumGC           uint32 `json:"numGC"`
}

type statusResponse struct {
	Success   bool            `json:"success"`
	Mensaje   string          `json:"mensaje"`
	Timestamp string          `json:"timestamp"`
	Uptime    float64         `json:"uptime"`
	Memoria   memoriaResponse `json:"memoria"`
}

// Status handles GET /api/status: uptime in seconds plus process memory
// figures taken from the runtime.
func (h *StatusHandler) Status(c echo.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, statusResponse{
		Success:   true,
		Mensaje:   "API funcionando correctamente",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.start).Seconds(),
		Memoria: memoriaResponse{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			NumGC:           mem.NumGC,
		},
	})
}
