package models

// DateLayout is the wire and storage format for attendance dates.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    Status `json:"status" binding:"required,oneof=present absent"`
}

// UndoEntry records the value an attendance write replaced.
// Previous is nil when the (date, student) pair had no entry.
type UndoEntry struct {
	StudentID string  `json:"student_id"`
	Date      string  `json:"date"`
	Previous  *Status `json:"previous_status"`
}

func (u UndoEntry) HasPrevious() bool {
	return u.Previous != nil
}

type DayEntry struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Status    Status `json:"status"`
}

type DayResponse struct {
	Date    string     `json:"date"`
	Entries []DayEntry `json:"entries"`
}

type MarkAttendanceResponse struct {
	StudentID      string  `json:"student_id"`
	Date           string  `json:"date"`
	Status         Status  `json:"status"`
	PreviousStatus *Status `json:"previous_status"`
}

// UndoResponse describes what an undo put back: either the earlier status
// or, when there was none, the removal of the entry.
type UndoResponse struct {
	StudentID      string  `json:"student_id"`
	Date           string  `json:"date"`
	RestoredStatus *Status `json:"restored_status"`
	Removed        bool    `json:"removed"`
}
