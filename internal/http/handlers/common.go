package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"reseller-console/internal/domain"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload", err.Error())
		return false
	}
	return true
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_"+name, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional positive integer query parameter.
func queryInt64(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, domain.ValidationError{Field: name, Msg: "must be a non-negative integer"}
	}
	return v, nil
}

func queryPagination(c *gin.Context) (domain.Pagination, error) {
	page, err := queryInt64(c, "page")
	if err != nil {
		return domain.Pagination{}, err
	}
	size, err := queryInt64(c, "pageSize")
	if err != nil {
		return domain.Pagination{}, err
	}
	return domain.Pagination{Page: int(page), PageSize: int(size)}.Normalize(), nil
}

func queryBool(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
