package handlers

import (
	"net/http"
	"time"

	"attendance_backend/models"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	session *store.Session
}

func NewAttendanceHandler(session *store.Session) *AttendanceHandler {
	return &AttendanceHandler{session: session}
}

func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.session.MarkAttendance(req.StudentID, req.Date, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MarkAttendanceResponse{
		StudentID:      entry.StudentID,
		Date:           entry.Date,
		Status:         req.Status,
		PreviousStatus: entry.Previous,
	})
}

// GetDates lists every date that has attendance data
func (h *AttendanceHandler) GetDates(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Dates())
}

func (h *AttendanceHandler) GetDay(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.session.Day(date))
}

// DeleteDay drops every entry recorded for the date. It cannot be undone.
func (h *AttendanceHandler) DeleteDay(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.session.DeleteAttendanceDate(date); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance for date deleted successfully",
		"date":    date,
	})
}

func dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
		return "", false
	}
	return date, true
}
