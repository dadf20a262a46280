package handlers

import (
	"errors"
	"net/http"

	"attendance_backend/models"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	session *store.Session
}

func NewStudentHandler(session *store.Session) *StudentHandler {
	return &StudentHandler{session: session}
}

// CreateStudent handles adding a student to the roster
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := h.session.AddStudent(req.ID, req.Name)
	if errors.Is(err, store.ErrNotPersisted) {
		respondNotPersisted(c, err, gin.H{"student": student})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) GetStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.ListStudents())
}

// DeleteStudent removes the student and their attendance on every date
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id := c.Param("id")

	purged, err := h.session.DeleteStudent(id)
	if errors.Is(err, store.ErrNotPersisted) {
		respondNotPersisted(c, err, gin.H{"student_id": id, "purged_entries": purged})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Student deleted successfully",
		"student_id":     id,
		"purged_entries": purged,
	})
}
