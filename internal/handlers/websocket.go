package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/services"
)

// WebSocketHandler upgrades an authenticated admin connection into the
// live submission feed.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("adminEmail")
		services.HandleWebSocket(hub, c.Writer, c.Request, email)
	}
}
