package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invensys/inventory-api/internal/api/handler"
	"github.com/invensys/inventory-api/internal/core/ports"
	"github.com/invensys/inventory-api/internal/core/service"
	"github.com/invensys/inventory-api/internal/infrastructure/config"
	mongodb "github.com/invensys/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/invensys/inventory-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the role cache is then skipped and lookups always hit Mongo.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("invensys"))

	// --- Dependencies ---
	rolRepo := mongodb.NewRolRepository(db)
	usuarioRepo := mongodb.NewUsuarioRepository(db)

	var rolLookup ports.RolLookup = rolRepo
	var rolCache ports.RolCacheInvalidator
	if rdb != nil {
		cache := redisdb.NewRolCache(rdb, rolRepo, log)
		rolLookup = cache
		rolCache = cache
	}

	rolService := service.NewRolService(rolRepo, rolCache, log)
	usuarioService := service.NewUsuarioService(usuarioRepo, rolLookup, log)

	dev := cfg.IsDevelopment()
	rolHandler := handler.NewRolHandler(rolService, dev)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService, dev)
	statusHandler := handler.NewStatusHandler()
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Info and health ---
	e.GET("/", statusHandler.Info)
	e.GET("/api/status", statusHandler.Status)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Roles ---
	roles := e.Group("/api/roles")
	roles.POST("", rolHandler.Create)
	roles.GET("", rolHandler.List)
	roles.GET("/:id", rolHandler.Get)
	roles.PUT("/:id", rolHandler.Update)
	roles.DELETE("/:id", rolHandler.Delete)

	// --- Usuarios ---
	usuarios := e.Group("/api/usuarios")
	usuarios.POST("", usuarioHandler.Create)
	usuarios.GET("", usuarioHandler.List)
	usuarios.GET("/:id", usuarioHandler.Get)
	usuarios.PUT("/:id", usuarioHandler.Update)
	usuarios.DELETE("/:id", usuarioHandler.Delete)

	return e
}

// requestLogger writes one structured line per inbound request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
