package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"intent-router/pkg/response"
)

const (
	ServiceName    = "intent-router"
	ServiceVersion = "1.0.0"
)

// systemStatus is the body of every system route.
type systemStatus struct {
	Status  string   `json:"status"`
	Service string   `json:"service"`
	Version string   `json:"version"`
	Uptime  string   `json:"uptime"`
	Domains []string `json:"domains,omitempty"`
}

func (srv HTTPServer) systemStatus(status string) systemStatus {
	return systemStatus{
		Status:  status,
		Service: ServiceName,
		Version: ServiceVersion,
		Uptime:  time.Since(srv.startedAt).Truncate(time.Second).String(),
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} systemStatus
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus("healthy"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} systemStatus
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.systemStatus("alive"))
}

// readyCheck reports ready once the route handler is mounted with at least
// one domain.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} systemStatus
// @Failure 503 {object} response.Resp "No routing domains"
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.routeHandler == nil || len(srv.domains) == 0 {
		response.Unavailable(c, "no routing domains configured")
		return
	}
	p := srv.systemStatus("ready")
	p.Domains = srv.domains
	response.OK(c, p)
}
