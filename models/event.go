package models

// Event names published on the live feed.
const (
	EventStudentAdded     = "STUDENT_ADDED"
	EventStudentDeleted   = "STUDENT_DELETED"
	EventAttendanceMarked = "ATTENDANCE_MARKED"
	EventQueueAdded       = "QUEUE_ADDED"
	EventQueueProcessed   = "QUEUE_PROCESSED"
	EventUndo             = "UNDO"
	EventDayDeleted       = "DAY_DELETED"
)

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}
