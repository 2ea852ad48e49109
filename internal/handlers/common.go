package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wizz677/applysmart/internal/apperr"
)

// HealthCheck is the GET /health endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps a domain error to its HTTP status. Internal failures are
// logged with their cause and surfaced as an opaque 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.KindInternal {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(e),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(e.HTTPStatus(), gin.H{"error": e.Message})
}

// jobIDParam parses the :id path segment. A non-numeric id is handled like a
// job that does not exist.
func jobIDParam(c *gin.Context) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperr.NotFound("Job not found")
	}
	return uint(v), nil
}
