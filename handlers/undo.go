package handlers

import (
	"net/http"

	"attendance_backend/models"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

type UndoHandler struct {
	session *store.Session
}

func NewUndoHandler(session *store.Session) *UndoHandler {
	return &UndoHandler{session: session}
}

func (h *UndoHandler) Undo(c *gin.Context) {
	entry, err := h.session.Undo()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UndoResponse{
		StudentID:      entry.StudentID,
		Date:           entry.Date,
		RestoredStatus: entry.Previous,
		Removed:        !entry.HasPrevious(),
	})
}
