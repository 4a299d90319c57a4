package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

// PageSize is the number of rows per list page.
const PageSize = 10

type pager struct {
	Page  int
	Pages int
	Total int
	Prev  string
	Next  string
}

func currentPage(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func pageWindow(page int) domain.Page {
	return domain.Page{Offset: (page - 1) * PageSize, Limit: PageSize}
}

func newPager(path string, q url.Values, page, total int) pager {
	p := pager{Page: page, Total: total, Pages: (total + PageSize - 1) / PageSize}
	if p.Pages < 1 {
		p.Pages = 1
	}
	link := func(n int) string {
		next := url.Values{}
		for k, v := range q {
			next[k] = v
		}
		next.Set("page", strconv.Itoa(n))
		return path + "?" + next.Encode()
	}
	if page > 1 {
		p.Prev = link(page - 1)
	}
	if page < p.Pages {
		p.Next = link(page + 1)
	}
	return p
}

// listURL is the list page with the request's query, used as form target and
// post/redirect/get destination.
func listURL(c *gin.Context, path string) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return path + "?" + q
	}
	return path
}

// finish redirects back to the list on success and re-renders it otherwise.
func (h *Handler) finish(c *gin.Context, err error, back string, rerender func(status int, msg string)) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		rerender(http.StatusBadRequest, verr.Error())
	case err != nil:
		h.fail(c, err)
	default:
		c.Redirect(http.StatusSeeOther, back)
	}
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

var errNotFound = errors.New("not found")

// mutate runs a by-id write, translating a missing record into errNotFound.
func mutate(c *gin.Context, write func(ctx context.Context, id int64) (bool, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	found, err := write(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return errNotFound
	}
	return nil
}

// handleWrite finishes a by-id write, rendering a 404 for missing records.
func (h *Handler) handleWrite(c *gin.Context, entity string, err error, back string, rerender func(status int, msg string)) {
	if errors.Is(err, errNotFound) {
		rerender(http.StatusNotFound, entity+" not found")
		return
	}
	h.finish(c, err, back, rerender)
}

type option struct {
	ID    int64
	Label string
}

func (h *Handler) flightOptions(ctx context.Context) ([]option, map[int64]string, error) {
	list, _, err := h.svc.Flights.List(ctx, domain.FlightFilter{}, domain.Page{Limit: domain.MaxLimit}, domain.Sort{})
	if err != nil {
		return nil, nil, err
	}
	opts := make([]option, 0, len(list))
	labels := make(map[int64]string, len(list))
	for _, f := range list {
		opts = append(opts, option{ID: f.ID, Label: f.FlightNumber})
		labels[f.ID] = f.FlightNumber
	}
	return opts, labels, nil
}

func (h *Handler) gateOptions(ctx context.Context) ([]option, map[int64]string, error) {
	list, _, err := h.svc.Gates.List(ctx, domain.GateFilter{}, domain.Page{Limit: domain.MaxLimit})
	if err != nil {
		return nil, nil, err
	}
	opts := make([]option, 0, len(list))
	labels := make(map[int64]string, len(list))
	for _, g := range list {
		opts = append(opts, option{ID: g.ID, Label: g.GateNumber})
		labels[g.ID] = g.GateNumber
	}
	return opts, labels, nil
}

func postForm(c *gin.Context) url.Values {
	if err := c.Request.ParseForm(); err != nil {
		return url.Values{}
	}
	return c.Request.PostForm
}
