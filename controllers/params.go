package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

// parseIDParam reads the :id route segment. On failure it writes the 400
// envelope and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseListQuery reads the common sort/limit/page query parameters.
func parseListQuery(c *gin.Context) services.ListQuery {
	q := services.ListQuery{Sort: c.DefaultQuery("sort", "-createdAt")}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = limit
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = page
	}
	return q
}

// parseBoolQuery returns nil unless the parameter is explicitly
// "true" or "false".
func parseBoolQuery(c *gin.Context, key string) *bool {
	switch c.Query(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
