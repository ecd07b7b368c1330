package http

import (
	"github.com/gin-gonic/gin"

	"intent-router/pkg/response"
)

// Route routes one chat message for the domain in the path. Degraded
// results are answered with 200: the clarification is the reply.
// @Summary     Route a chat message
// @Description Extracts an intent for the domain and compiles it into an action plan, or a clarification.
// @Tags        Route
// @Accept      json
// @Produce     json
// @Param       domain path     string   true "Routing domain" Enums(rail, agenda)
// @Param       body   body     routeReq true "Chat message"
// @Success     200    {object} routeResp
// @Failure     400    {object} response.Resp "Bad Request"
// @Failure     404    {object} response.Resp "Unknown domain"
// @Failure     429    {object} response.Resp "Too Many Requests"
// @Failure     500    {object} response.Resp "Internal Server Error"
// @Router      /api/v1/route/{domain} [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Route", err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// RecordOutput stores the output of the action executed for the chat's
// latest message; the next message is routed with it as context.
// @Summary     Record an action output
// @Tags        Route
// @Accept      json
// @Produce     json
// @Param       chatId path     string          true "Chat ID"
// @Param       body   body     recordOutputReq true "Action output"
// @Success     200    {object} response.Resp
// @Failure     400    {object} response.Resp "Bad Request"
// @Failure     404    {object} response.Resp "No routed message for the chat"
// @Router      /api/v1/chats/{chatId}/output [POST]
func (h *handler) RecordOutput(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecordOutputReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RecordOutput(ctx, req.toInput()); err != nil {
		h.respondError(c, "uc.RecordOutput", err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	mapped := h.mapError(err)
	if mapped == nil {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	h.l.Warnf(c.Request.Context(), "%s: %v", op, err)
	response.Error(c, mapped, nil)
}
