package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/route/:domain", h.Route)
	rg.POST("/chats/:chatId/output", h.RecordOutput)
}
