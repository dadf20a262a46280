package store

import (
	"sort"

	"attendance_backend/models"
)

// Attendance holds date -> student id -> status and the undo log fed by
// every write.
type Attendance struct {
	days map[string]map[string]models.Status
	undo *UndoLog
}

func NewAttendance() *Attendance {
	return &Attendance{
		days: make(map[string]map[string]models.Status),
		undo: NewUndoLog(),
	}
}

// Mark writes status for (studentID, date) and pushes the replaced value
// onto the undo log. The student is not checked against the roster.
func (a *Attendance) Mark(studentID, date string, status models.Status) models.UndoEntry {
	entry := models.UndoEntry{StudentID: studentID, Date: date}
	day, ok := a.days[date]
	if !ok {
		day = make(map[string]models.Status)
		a.days[date] = day
	}
	if prev, ok := day[studentID]; ok {
		entry.Previous = &prev
	}
	a.undo.Push(entry)
	day[studentID] = status
	return entry
}

// Undo restores the most recently replaced value. An entry that had no
// previous value is removed; a day left empty is removed with it.
func (a *Attendance) Undo() (models.UndoEntry, error) {
	entry, ok := a.undo.Pop()
	if !ok {
		return models.UndoEntry{}, opErr("undo", "", ErrEmptyUndo)
	}
	if entry.HasPrevious() {
		day, ok := a.days[entry.Date]
		if !ok {
			day = make(map[string]models.Status)
			a.days[entry.Date] = day
		}
		day[entry.StudentID] = *entry.Previous
		return entry, nil
	}
	if day, ok := a.days[entry.Date]; ok {
		delete(day, entry.StudentID)
		if len(day) == 0 {
			delete(a.days, entry.Date)
		}
	}
	return entry, nil
}

// DeleteDate drops a whole day. It is not recorded in the undo log.
func (a *Attendance) DeleteDate(date string) error {
	if _, ok := a.days[date]; !ok {
		return opErr("delete attendance date", date, ErrNotFound)
	}
	delete(a.days, date)
	return nil
}

// RemoveStudent purges studentID from every day and reports how many
// entries were removed. Days left empty are dropped.
func (a *Attendance) RemoveStudent(studentID string) int {
	removed := 0
	for date, day := range a.days {
		if _, ok := day[studentID]; ok {
			delete(day, studentID)
			removed++
			if len(day) == 0 {
				delete(a.days, date)
			}
		}
	}
	return removed
}

// Day returns a copy of the entries for date, empty when none exist.
func (a *Attendance) Day(date string) map[string]models.Status {
	out := make(map[string]models.Status, len(a.days[date]))
	for id, st := range a.days[date] {
		out[id] = st
	}
	return out
}

// StatusOf defaults to absent when no entry exists.
func (a *Attendance) StatusOf(studentID, date string) models.Status {
	if st, ok := a.days[date][studentID]; ok {
		return st
	}
	return models.StatusAbsent
}

func (a *Attendance) Has(studentID, date string) bool {
	_, ok := a.days[date][studentID]
	return ok
}

// Dates returns every date with a day map, ascending.
func (a *Attendance) Dates() []string {
	out := make([]string, 0, len(a.days))
	for d := range a.days {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (a *Attendance) UndoDepth() int {
	return a.undo.Len()
}
