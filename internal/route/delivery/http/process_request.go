package http

import (
	"github.com/gin-gonic/gin"
)

// processRouteReq binds and validates the route request body + URI param.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Domain = c.Param("domain")
	return req, req.validate()
}

// processRecordOutputReq binds and validates the output request body + URI param.
func (h *handler) processRecordOutputReq(c *gin.Context) (recordOutputReq, error) {
	var req recordOutputReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ChatID = c.Param("chatId")
	return req, req.validate()
}
