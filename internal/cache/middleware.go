package cache

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HitHeader marks a response served from the cache.
const HitHeader = "X-Funbook-Cache"

// Middleware intercepts GET requests: a cached response is served verbatim,
// a miss passes through to the live handler and is returned uncached (no
// stale-while-revalidate, no background refresh). With the pass-through flag
// set the middleware is inert. Entries are keyed by the full request URI, so
// a query-string variant of a precached path is a miss, not the bare entry.
func (c *Controller) Middleware() gin.HandlerFunc {
	return func(g *gin.Context) {
		if c.cfg.Passthrough || g.Request.Method != http.MethodGet {
			g.Next()
			return
		}

		entry, ok := c.lookup(g.Request.URL.RequestURI())
		if !ok {
			g.Next()
			return
		}

		for key, values := range entry.Header {
			for _, v := range values {
				g.Writer.Header().Add(key, v)
			}
		}
		g.Writer.Header().Set(HitHeader, "hit")
		g.Data(entry.Status, entry.Header.Get("Content-Type"), entry.Body)
		g.Abort()
	}
}
