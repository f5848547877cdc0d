package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"interviewai-backend/internal/shared/server/respond"
)

// PathUUID reads the named path parameter as a UUID. On failure it writes a
// 400 response and returns false. On success the id tags the request log.
func PathUUID(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", name+" must be a valid UUID", nil)
		return "", false
	}
	c.Set(ResourceIDKey, id.String())
	return id.String(), true
}

// PageParams reads limit and offset query parameters. Unparseable values fall
// back to defaults and limit is clamped to [0, maxLimit].
func PageParams(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
