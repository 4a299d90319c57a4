package api

import (
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// list serves GET /flights?offset=&limit=&search=&status=&sort=&order=
func (h *FlightHandler) list(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	filter := domain.FlightFilter{
		Search: c.Query("search"),
		Status: domain.FlightStatus(c.Query("status")),
	}
	sort := domain.Sort{Field: c.Query("sort"), Order: domain.SortOrder(c.Query("order"))}

	list, total, err := h.service.List(c.Request.Context(), filter, page, sort)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[domain.Flight]{Data: list, Total: total})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if flight == nil {
		notFound(c, "Flight")
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var input domain.FlightInput
	if !bindJSON(c, &input) {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch domain.FlightPatch
	if !bindJSON(c, &patch) {
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if flight == nil {
		notFound(c, "Flight")
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		notFound(c, "Flight")
		return
	}
	c.Status(http.StatusNoContent)
}
