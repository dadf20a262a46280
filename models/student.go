package models

// UnknownStudent is the display name for ids that are not on the roster.
const UnknownStudent = "Unknown"

type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateStudentRequest struct {
	ID   string `json:"id" binding:"required,max=64"`
	Name string `json:"name" binding:"required,max=255"`
}
