package web

import (
	"context"
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

type passengersData struct {
	Passengers []domain.Passenger
	FlightID   *int64
	Flights    []option
	FlightNums map[int64]string
	Pager      pager
	Self       string
}

func (h *Handler) passengers(c *gin.Context) {
	h.renderPassengers(c, http.StatusOK, view{})
}

func (h *Handler) renderPassengers(c *gin.Context, status int, v view) {
	ctx := c.Request.Context()
	q := c.Request.URL.Query()
	page := currentPage(q)
	data := passengersData{Self: listURL(c, "/passengers")}

	flightID, err := optionalID(q, "flightId")
	if err != nil {
		status, v.Error = http.StatusBadRequest, err.Error()
	}
	data.FlightID = flightID

	list, total, err := h.svc.Passengers.List(ctx, domain.PassengerFilter{FlightID: flightID}, pageWindow(page))
	if err != nil {
		h.fail(c, err)
		return
	}
	data.Passengers = list
	data.Pager = newPager("/passengers", q, page, total)

	if data.Flights, data.FlightNums, err = h.flightOptions(ctx); err != nil {
		h.fail(c, err)
		return
	}

	v.Title, v.Active, v.Data = "Passengers", "passengers", data
	h.render(c, status, "passengers.html", v)
}

func (h *Handler) createPassenger(c *gin.Context) {
	form := postForm(c)
	in, err := passengerInput(form)
	if err == nil {
		_, err = h.svc.Passengers.Create(c.Request.Context(), in)
	}
	h.finish(c, err, listURL(c, "/passengers"), func(status int, msg string) {
		h.renderPassengers(c, status, view{Open: "create", Error: msg, Form: form})
	})
}

func (h *Handler) updatePassenger(c *gin.Context) {
	form := postForm(c)
	err := mutate(c, func(ctx context.Context, id int64) (bool, error) {
		patch, err := passengerPatch(form)
		if err != nil {
			return false, err
		}
		p, err := h.svc.Passengers.Update(ctx, id, patch)
		return p != nil, err
	})
	h.handleWrite(c, "Passenger", err, listURL(c, "/passengers"), func(status int, msg string) {
		h.renderPassengers(c, status, view{Open: "edit", Action: c.Request.URL.String(), Error: msg, Form: form})
	})
}

func (h *Handler) deletePassenger(c *gin.Context) {
	err := mutate(c, h.svc.Passengers.Delete)
	h.handleWrite(c, "Passenger", err, listURL(c, "/passengers"), func(status int, msg string) {
		h.renderPassengers(c, status, view{Error: msg})
	})
}
