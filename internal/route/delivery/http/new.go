package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"intent-router/internal/route"
	"intent-router/pkg/log"
)

// Handler is the HTTP delivery of the route use case.
type Handler interface {
	Route(c *gin.Context)
	RecordOutput(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  route.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for routing.
func New(l log.Logger, uc route.UseCase) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
