package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"intent-router/pkg/log"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), func() string { return "generated" })

	e := gin.New()
	e.Use(mw.RequestID(), mw.AccessLog())
	e.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "generated", want: "generated"},
		{name: "from caller", header: "abc-123", want: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			e.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, w.Header().Get(HeaderRequestID))
		})
	}
}
