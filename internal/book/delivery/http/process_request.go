package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the catalog listing query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
