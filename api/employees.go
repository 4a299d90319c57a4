package api

import (
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/employees"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	service employees.EmployeeUseCase
}

func NewEmployeeHandler(service employees.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func (h *EmployeeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *EmployeeHandler) list(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	filter := domain.EmployeeFilter{Role: domain.EmployeeRole(c.Query("role"))}

	list, total, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[domain.Employee]{Data: list, Total: total})
}

func (h *EmployeeHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	employee, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if employee == nil {
		notFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) create(c *gin.Context) {
	var input domain.EmployeeInput
	if !bindJSON(c, &input) {
		return
	}
	employee, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch domain.EmployeePatch
	if !bindJSON(c, &patch) {
		return
	}
	employee, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if employee == nil {
		notFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) delete(c *gin.Context) {
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
		notFound(c, "Employee")
		return
	}
	c.Status(http.StatusNoContent)
}
