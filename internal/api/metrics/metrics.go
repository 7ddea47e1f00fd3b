// Package metrics defines and registers all custom Prometheus metrics for the
// InvenSys inventory API. It is the single source of truth for metric names
// and help strings.
//
// Metrics register themselves with the default Prometheus registry at init
// time via promauto; the HTTP middleware and /metrics endpoint are wired in
// the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invensys"

// RolesCreadosTotal counts roles successfully created.
var RolesCreadosTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_creados_total",
		Help:      "Total number of roles successfully created.",
	},
)

// RolesEliminadosTotal counts roles permanently deleted.
var RolesEliminadosTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_eliminados_total",
		Help:      "Total number of roles permanently deleted.",
	},
)

// UsuariosCreadosTotal counts users successfully created.
var UsuariosCreadosTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usuarios_creados_total",
		Help:      "Total number of users successfully created.",
	},
)

// UsuariosEliminadosTotal counts users permanently deleted.
var UsuariosEliminadosTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usuarios_eliminados_total",
		Help:      "Total number of users permanently deleted.",
	},
)

// StoreErrorsTotal counts unrecognized store failures surfaced as 500s.
// Label:
//   - operation: short name of the failed operation (e.g. "crear_rol")
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of unexpected store failures, by operation.",
	},
	[]string{"operation"},
)
