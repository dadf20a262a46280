package handlers

import (
	"log"

	"attendance_backend/feed"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	hub *feed.Hub
}

func NewFeedHandler(hub *feed.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Subscribe upgrades to a websocket that receives every attendance change.
func (h *FeedHandler) Subscribe(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request); err != nil {
		// The upgrader has already written the error response.
		log.Printf("[FEED] upgrade failed: %v", err)
	}
}
