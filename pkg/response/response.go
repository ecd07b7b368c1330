package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp wraps data in a success body.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends err as the message. An *HTTPError anywhere in the chain picks
// the status, which doubles as the error code; anything else is a 400 with
// error code 1. A nil data becomes an empty object.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	status, code := http.StatusBadRequest, 1
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		status, code = httpErr.StatusCode, httpErr.StatusCode
	}
	c.JSON(status, Resp{ErrorCode: code, Message: err.Error(), Data: data})
}

// InternalError sends a 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unavailable sends a 503 with message.
func Unavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   message,
	})
}
