package handlers

import (
	"net/http"

	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	session *store.Session
}

func NewReportHandler(session *store.Session) *ReportHandler {
	return &ReportHandler{session: session}
}

func (h *ReportHandler) GetStudentReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.StudentReport(c.Param("id")))
}

func (h *ReportHandler) GetDailyCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.DailyPresentCounts())
}
