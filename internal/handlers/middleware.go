package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"serverless_blog/internal/metrics"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userId"

	msgUnauthorized = "unauthorized"
)

// userIdMiddleware reads "Authorization: <scheme> <token>", verifies the token and
// stores the user id in the Gin context. Missing, malformed and invalid tokens
// all get the same 403.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	var token string
	if parts := strings.Fields(c.GetHeader("Authorization")); len(parts) > 1 {
		token = parts[1]
	}

	userID, err := h.services.ParseToken(token)
	if err != nil || userID == "" {
		if h.log != nil {
			h.log.Infow("auth_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgUnauthorized})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, userID)
	c.Next()
}

// userIDFrom returns the id set by userIdMiddleware.
func userIDFrom(c *gin.Context) (string, bool) {
	id := c.GetString(ctxUserID)
	return id, id != ""
}

func routeLabel(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	userID, _ := userIDFrom(c)
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"user_id", userID,
	)
}

func (h *Handler) metricsMiddleware(c *gin.Context) {
	start := time.Now()
	metrics.HTTPRequestsInFlight.Inc()
	defer metrics.HTTPRequestsInFlight.Dec()

	c.Next()

	route := routeLabel(c)
	metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	metrics.HTTPRequestDurationSeconds.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}
