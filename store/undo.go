package store

import (
	"attendance_backend/collections"
	"attendance_backend/models"
)

// UndoLog is the LIFO history of attendance overwrites.
type UndoLog struct {
	entries *collections.Stack[models.UndoEntry]
}

func NewUndoLog() *UndoLog {
	return &UndoLog{entries: collections.NewStack[models.UndoEntry]()}
}

func (u *UndoLog) Push(e models.UndoEntry) {
	u.entries.Push(e)
}

func (u *UndoLog) Pop() (models.UndoEntry, bool) {
	return u.entries.Pop()
}

func (u *UndoLog) Len() int {
	return u.entries.Len()
}
