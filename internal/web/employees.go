package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

type employeesData struct {
	Employees  []domain.Employee
	Filter     domain.EmployeeFilter
	Roles      []domain.EmployeeRole
	Flights    []option
	FlightNums map[int64]string
	Gates      []option
	GateNums   map[int64]string
	Pager      pager
	Self       string
}

func (h *Handler) employees(c *gin.Context) {
	h.renderEmployees(c, http.StatusOK, view{})
}

func (h *Handler) renderEmployees(c *gin.Context, status int, v view) {
	ctx := c.Request.Context()
	q := c.Request.URL.Query()
	page := currentPage(q)
	data := employeesData{
		Filter: domain.EmployeeFilter{Role: domain.EmployeeRole(q.Get("role"))},
		Roles:  domain.EmployeeRoles,
		Self:   listURL(c, "/employees"),
	}

	list, total, err := h.svc.Employees.List(ctx, data.Filter, pageWindow(page))
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		status, v.Error = http.StatusBadRequest, verr.Error()
	} else if err != nil {
		h.fail(c, err)
		return
	}
	data.Employees = list
	data.Pager = newPager("/employees", q, page, total)

	if data.Flights, data.FlightNums, err = h.flightOptions(ctx); err != nil {
		h.fail(c, err)
		return
	}
	if data.Gates, data.GateNums, err = h.gateOptions(ctx); err != nil {
		h.fail(c, err)
		return
	}

	v.Title, v.Active, v.Data = "Employees", "employees", data
	h.render(c, status, "employees.html", v)
}

func (h *Handler) createEmployee(c *gin.Context) {
	form := postForm(c)
	in, err := employeeInput(form)
	if err == nil {
		_, err = h.svc.Employees.Create(c.Request.Context(), in)
	}
	h.finish(c, err, listURL(c, "/employees"), func(status int, msg string) {
		h.renderEmployees(c, status, view{Open: "create", Error: msg, Form: form})
	})
}

func (h *Handler) updateEmployee(c *gin.Context) {
	form := postForm(c)
	err := mutate(c, func(ctx context.Context, id int64) (bool, error) {
		patch, err := employeePatch(form)
		if err != nil {
			return false, err
		}
		e, err := h.svc.Employees.Update(ctx, id, patch)
		return e != nil, err
	})
	h.handleWrite(c, "Employee", err, listURL(c, "/employees"), func(status int, msg string) {
		h.renderEmployees(c, status, view{Open: "edit", Action: c.Request.URL.String(), Error: msg, Form: form})
	})
}

func (h *Handler) deleteEmployee(c *gin.Context) {
	err := mutate(c, h.svc.Employees.Delete)
	h.handleWrite(c, "Employee", err, listURL(c, "/employees"), func(status int, msg string) {
		h.renderEmployees(c, status, view{Error: msg})
	})
}
