package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/stats"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service stats.StatsUseCase
}

func NewStatsHandler(service stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights-today", h.flightsToday)
	router.GET("/flights-status", h.flightStatus)
	router.GET("/gates-status", h.gateStatus)
	router.GET("/passengers-per-flight", h.passengersPerFlight)
	router.GET("/daily-traffic", h.dailyTraffic)
	router.GET("/employees-role-count", h.employeeRoles)
	router.GET("/overview", h.overview)
}

type countResponse struct {
	Count int `json:"count"`
}

func (h *StatsHandler) flightsToday(c *gin.Context) {
	n, err := h.service.FlightsToday(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, countResponse{Count: n})
}

func (h *StatsHandler) flightStatus(c *gin.Context) {
	respond(c, h.service.FlightStatus)
}

func (h *StatsHandler) gateStatus(c *gin.Context) {
	respond(c, h.service.GateStatus)
}

func (h *StatsHandler) passengersPerFlight(c *gin.Context) {
	respond(c, h.service.PassengersPerFlight)
}

func (h *StatsHandler) employeeRoles(c *gin.Context) {
	respond(c, h.service.EmployeeRoles)
}

func (h *StatsHandler) overview(c *gin.Context) {
	respond(c, h.service.Overview)
}

func (h *StatsHandler) dailyTraffic(c *gin.Context) {
	days, err := queryInt(c, "days", domain.DefaultTrafficDays)
	if err != nil {
		writeError(c, err)
		return
	}
	traffic, err := h.service.DailyTraffic(c.Request.Context(), days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, traffic)
}

func respond[T any](c *gin.Context, load func(ctx context.Context) (T, error)) {
	v, err := load(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
