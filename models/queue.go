package models

import "time"

// QueueItem is a pending attendance write waiting in the intake queue.
type QueueItem struct {
	StudentID   string    `json:"student_id"`
	Date        string    `json:"date"`
	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// QueueAddRequest leaves Date optional; the handler fills in today's date.
type QueueAddRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status    Status `json:"status" binding:"required,oneof=present absent"`
}
