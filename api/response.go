package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

type listResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// writeError maps validation failures to 400 and everything else to 500.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, errorResponse{Message: verr.Error(), Errors: verr.Fields})
		return
	}
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, errorResponse{Message: entity + " not found"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, domain.NewValidationError("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, domain.NewValidationError("body", "is not valid JSON: "+err.Error()))
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(key, "must be an integer")
	}
	return n, nil
}

// parsePage reads offset (default 0) and limit (default 10, clamped to 100).
func parsePage(c *gin.Context) (domain.Page, error) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return domain.Page{}, err
	}
	if offset < 0 {
		return domain.Page{}, domain.NewValidationError("offset", "must be at least 0")
	}
	limit, err := queryInt(c, "limit", domain.DefaultLimit)
	if err != nil {
		return domain.Page{}, err
	}
	if limit < 1 {
		return domain.Page{}, domain.NewValidationError("limit", "must be at least 1")
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	return domain.Page{Offset: offset, Limit: limit}, nil
}
