package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "funbook/pkg/errors"
	"funbook/pkg/response"
)

// RateLimit caps the request rate of the routes it is mounted on. Used on
// mutating routes so a click storm on the refresh control cannot hammer the
// upstream feed.
func (m Middleware) RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "Rate limit exceeded: %s %s", c.Request.Method, c.Request.URL.Path)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests, slow down"))
			c.Abort()
			return
		}
		c.Next()
	}
}
