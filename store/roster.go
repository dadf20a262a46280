package store

import (
	"sort"
	"strings"

	"attendance_backend/models"
)

// RosterPersister mirrors the roster to external storage. Save always
// receives the complete roster and rewrites the stored copy wholesale.
type RosterPersister interface {
	Load() (map[string]string, error)
	Save(students map[string]string) error
}

// Roster maps student id to display name.
type Roster struct {
	students map[string]string
}

func NewRoster() *Roster {
	return &Roster{students: make(map[string]string)}
}

func (r *Roster) Add(id, name string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return opErr("add student", id, ErrInvalidInput)
	}
	if _, exists := r.students[id]; exists {
		return opErr("add student", id, ErrDuplicateID)
	}
	r.students[id] = strings.TrimSpace(name)
	return nil
}

func (r *Roster) Remove(id string) error {
	if _, exists := r.students[id]; !exists {
		return opErr("delete student", id, ErrNotFound)
	}
	delete(r.students, id)
	return nil
}

// Lookup returns the display name, or models.UnknownStudent.
func (r *Roster) Lookup(id string) string {
	if name, ok := r.students[id]; ok {
		return name
	}
	return models.UnknownStudent
}

func (r *Roster) Len() int {
	return len(r.students)
}

// List returns every student sorted by id.
func (r *Roster) List() []models.Student {
	out := make([]models.Student, 0, len(r.students))
	for id, name := range r.students {
		out = append(out, models.Student{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Roster) Snapshot() map[string]string {
	out := make(map[string]string, len(r.students))
	for id, name := range r.students {
		out[id] = name
	}
	return out
}

// Replace swaps in a loaded roster. Blank ids are dropped.
func (r *Roster) Replace(students map[string]string) {
	r.students = make(map[string]string, len(students))
	for id, name := range students {
		if strings.TrimSpace(id) == "" {
			continue
		}
		r.students[id] = name
	}
}
