package api

import (
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *PassengerHandler) list(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	var filter domain.PassengerFilter
	if _, ok := c.GetQuery("flightId"); ok {
		flightID, err := queryInt(c, "flightId", 0)
		if err != nil {
			writeError(c, err)
			return
		}
		id := int64(flightID)
		filter.FlightID = &id
	}

	list, total, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[domain.Passenger]{Data: list, Total: total})
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	passenger, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if passenger == nil {
		notFound(c, "Passenger")
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var input domain.PassengerInput
	if !bindJSON(c, &input) {
		return
	}
	passenger, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch domain.PassengerPatch
	if !bindJSON(c, &patch) {
		return
	}
	passenger, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if passenger == nil {
		notFound(c, "Passenger")
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) delete(c *gin.Context) {
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
		notFound(c, "Passenger")
		return
	}
	c.Status(http.StatusNoContent)
}
