package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

type flightsData struct {
	Flights  []domain.Flight
	Filter   domain.FlightFilter
	Sort     domain.Sort
	Statuses []domain.FlightStatus
	Gates    []option
	GateNums map[int64]string
	Pager    pager
	Self     string
}

func (h *Handler) flights(c *gin.Context) {
	h.renderFlights(c, http.StatusOK, view{})
}

func (h *Handler) renderFlights(c *gin.Context, status int, v view) {
	ctx := c.Request.Context()
	q := c.Request.URL.Query()
	page := currentPage(q)
	data := flightsData{
		Filter:   domain.FlightFilter{Search: q.Get("search"), Status: domain.FlightStatus(q.Get("status"))},
		Sort:     domain.Sort{Field: q.Get("sort"), Order: domain.SortOrder(q.Get("order"))},
		Statuses: domain.FlightStatuses,
		Self:     listURL(c, "/flights"),
	}

	list, total, err := h.svc.Flights.List(ctx, data.Filter, pageWindow(page), data.Sort)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		status, v.Error = http.StatusBadRequest, verr.Error()
	} else if err != nil {
		h.fail(c, err)
		return
	}
	data.Flights = list
	data.Pager = newPager("/flights", q, page, total)

	if data.Gates, data.GateNums, err = h.gateOptions(ctx); err != nil {
		h.fail(c, err)
		return
	}

	v.Title, v.Active, v.Data = "Flights", "flights", data
	h.render(c, status, "flights.html", v)
}

func (h *Handler) createFlight(c *gin.Context) {
	form := postForm(c)
	in, err := flightInput(form)
	if err == nil {
		_, err = h.svc.Flights.Create(c.Request.Context(), in)
	}
	h.finish(c, err, listURL(c, "/flights"), func(status int, msg string) {
		h.renderFlights(c, status, view{Open: "create", Error: msg, Form: form})
	})
}

func (h *Handler) updateFlight(c *gin.Context) {
	form := postForm(c)
	err := mutate(c, func(ctx context.Context, id int64) (bool, error) {
		patch, err := flightPatch(form)
		if err != nil {
			return false, err
		}
		f, err := h.svc.Flights.Update(ctx, id, patch)
		return f != nil, err
	})
	h.handleWrite(c, "Flight", err, listURL(c, "/flights"), func(status int, msg string) {
		h.renderFlights(c, status, view{Open: "edit", Action: c.Request.URL.String(), Error: msg, Form: form})
	})
}

func (h *Handler) deleteFlight(c *gin.Context) {
	err := mutate(c, h.svc.Flights.Delete)
	h.handleWrite(c, "Flight", err, listURL(c, "/flights"), func(status int, msg string) {
		h.renderFlights(c, status, view{Error: msg})
	})
}
