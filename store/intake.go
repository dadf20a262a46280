package store

import (
	"attendance_backend/collections"
	"attendance_backend/models"
)

// Intake holds attendance requests awaiting commit plus the full history of
// everything ever submitted.
type Intake struct {
	pending *collections.Queue[models.QueueItem]
	history *collections.Log[models.QueueItem]
}

func NewIntake() *Intake {
	return &Intake{
		pending: collections.NewQueue[models.QueueItem](),
		history: collections.NewLog[models.QueueItem](),
	}
}

// Enqueue accepts the item unconditionally; duplicates are kept.
func (in *Intake) Enqueue(item models.QueueItem) {
	in.pending.Enqueue(item)
	in.history.Append(item)
}

func (in *Intake) Next() (models.QueueItem, error) {
	item, ok := in.pending.Dequeue()
	if !ok {
		return models.QueueItem{}, opErr("process queue", "", ErrEmptyQueue)
	}
	return item, nil
}

func (in *Intake) Pending() []models.QueueItem {
	return in.pending.Items()
}

func (in *Intake) History() []models.QueueItem {
	return in.history.All()
}
