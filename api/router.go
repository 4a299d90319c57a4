package api

import (
	"github.com/Domenick1991/airport-ops/internal/session"
	"github.com/gin-gonic/gin"
)

// Handlers groups every JSON endpoint mounted under /api.
type Handlers struct {
	Auth       *AuthHandler
	Flights    *FlightHandler
	Gates      *GateHandler
	Employees  *EmployeeHandler
	Passengers *PassengerHandler
	Stats      *StatsHandler
}

// Register mounts the auth routes publicly and everything else behind
// RequireSession.
func (h Handlers) Register(router *gin.RouterGroup, sessions *session.Manager) {
	h.Auth.Register(router)

	protected := router.Group("")
	protected.Use(RequireSession(sessions))
	h.Flights.Register(protected.Group("/flights"))
	h.Gates.Register(protected.Group("/gates"))
	h.Employees.Register(protected.Group("/employees"))
	h.Passengers.Register(protected.Group("/passengers"))
	h.Stats.Register(protected.Group("/stats"))
}
