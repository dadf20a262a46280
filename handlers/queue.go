package handlers

import (
	"net/http"

	"attendance_backend/models"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	session *store.Session
}

func NewQueueHandler(session *store.Session) *QueueHandler {
	return &QueueHandler{session: session}
}

// AddToQueue submits an attendance write for later processing
func (h *QueueHandler) AddToQueue(c *gin.Context) {
	var req models.QueueAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.session.QueueAdd(req.StudentID, req.Date, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, item)
}

func (h *QueueHandler) GetQueue(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.QueuePending())
}

func (h *QueueHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.QueueHistory())
}

// ProcessNext applies the oldest pending item
func (h *QueueHandler) ProcessNext(c *gin.Context) {
	item, err := h.session.ProcessNextQueued()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
