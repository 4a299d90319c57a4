package api

import (
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/gates"
	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	service gates.GateUseCase
}

func NewGateHandler(service gates.GateUseCase) *GateHandler {
	return &GateHandler{service: service}
}

func (h *GateHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/available", h.available)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *GateHandler) list(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	filter := domain.GateFilter{Status: domain.GateStatus(c.Query("status"))}

	list, total, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[domain.Gate]{Data: list, Total: total})
}

func (h *GateHandler) available(c *gin.Context) {
	list, err := h.service.Available(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GateHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	gate, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if gate == nil {
		notFound(c, "Gate")
		return
	}
	c.JSON(http.StatusOK, gate)
}

func (h *GateHandler) create(c *gin.Context) {
	var input domain.GateInput
	if !bindJSON(c, &input) {
		return
	}
	gate, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gate)
}

func (h *GateHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch domain.GatePatch
	if !bindJSON(c, &patch) {
		return
	}
	gate, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if gate == nil {
		notFound(c, "Gate")
		return
	}
	c.JSON(http.StatusOK, gate)
}

func (h *GateHandler) delete(c *gin.Context) {
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
		notFound(c, "Gate")
		return
	}
	c.Status(http.StatusNoContent)
}
