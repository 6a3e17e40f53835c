package middleware

import (
	"net/http"

	"staymarket/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const guestIDKey = "guest_id"

// GuestContext parses the X-Guest-ID header when present. A malformed header
// is rejected outright; an absent one is fine, handlers that need a caller
// identity fetch it with GetGuestID and reject the request themselves.
func GuestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(guestIDHeader); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid X-Guest-ID header", nil)
				return
			}
			c.Set(guestIDKey, id)
		}
		c.Next()
	}
}

func GetGuestID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(guestIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
