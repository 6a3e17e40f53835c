package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error payload every endpoint emits. The shape matches the
// flat {"error": "..."} bodies handlers write inline with gin.H.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError records the original error on the gin context for logging
// and writes the public message to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
