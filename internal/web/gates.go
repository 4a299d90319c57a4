package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

type gatesData struct {
	Gates      []domain.Gate
	Filter     domain.GateFilter
	Statuses   []domain.GateStatus
	Flights    []option
	FlightNums map[int64]string
	Pager      pager
	Self       string
}

func (h *Handler) gates(c *gin.Context) {
	h.renderGates(c, http.StatusOK, view{})
}

func (h *Handler) renderGates(c *gin.Context, status int, v view) {
	ctx := c.Request.Context()
	q := c.Request.URL.Query()
	page := currentPage(q)
	data := gatesData{
		Filter:   domain.GateFilter{Status: domain.GateStatus(q.Get("status"))},
		Statuses: domain.GateStatuses,
		Self:     listURL(c, "/gates"),
	}

	list, total, err := h.svc.Gates.List(ctx, data.Filter, pageWindow(page))
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		status, v.Error = http.StatusBadRequest, verr.Error()
	} else if err != nil {
		h.fail(c, err)
		return
	}
	data.Gates = list
	data.Pager = newPager("/gates", q, page, total)

	if data.Flights, data.FlightNums, err = h.flightOptions(ctx); err != nil {
		h.fail(c, err)
		return
	}

	v.Title, v.Active, v.Data = "Gates", "gates", data
	h.render(c, status, "gates.html", v)
}

func (h *Handler) createGate(c *gin.Context) {
	form := postForm(c)
	in, err := gateInput(form)
	if err == nil {
		_, err = h.svc.Gates.Create(c.Request.Context(), in)
	}
	h.finish(c, err, listURL(c, "/gates"), func(status int, msg string) {
		h.renderGates(c, status, view{Open: "create", Error: msg, Form: form})
	})
}

func (h *Handler) updateGate(c *gin.Context) {
	form := postForm(c)
	err := mutate(c, func(ctx context.Context, id int64) (bool, error) {
		patch, err := gatePatch(form)
		if err != nil {
			return false, err
		}
		g, err := h.svc.Gates.Update(ctx, id, patch)
		return g != nil, err
	})
	h.handleWrite(c, "Gate", err, listURL(c, "/gates"), func(status int, msg string) {
		h.renderGates(c, status, view{Open: "edit", Action: c.Request.URL.String(), Error: msg, Form: form})
	})
}

func (h *Handler) deleteGate(c *gin.Context) {
	err := mutate(c, h.svc.Gates.Delete)
	h.handleWrite(c, "Gate", err, listURL(c, "/gates"), func(status int, msg string) {
		h.renderGates(c, status, view{Error: msg})
	})
}
