package store

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"attendance_backend/models"
)

// Notifier receives change events after a mutation has been applied.
type Notifier interface {
	Publish(evt models.Event)
}

// Session owns the roster, attendance, undo log and intake queue for one
// running instance. Every operation holds the session lock for its whole
// mutation, so each one is atomic with respect to the others.
type Session struct {
	mu         sync.Mutex
	roster     *Roster
	attendance *Attendance
	intake     *Intake

	persister RosterPersister
	notifier  Notifier
	now       func() time.Time
}

type Option func(*Session)

func WithPersister(p RosterPersister) Option {
	return func(s *Session) { s.persister = p }
}

func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession builds an empty session and loads the roster from the
// persister, if one is configured. A failed load leaves the roster empty.
func NewSession(opts ...Option) *Session {
	s := &Session{
		roster:     NewRoster(),
		attendance: NewAttendance(),
		intake:     NewIntake(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.persister != nil {
		students, err := s.persister.Load()
		if err != nil {
			log.Printf("[ROSTER] load failed, starting with empty roster: %v", err)
		} else {
			s.roster.Replace(students)
			log.Printf("[ROSTER] loaded %d students", s.roster.Len())
		}
	}
	return s
}

func (s *Session) publish(event string, data interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(models.Event{Event: event, Data: data})
}

// saveRoster must be called with s.mu held.
func (s *Session) saveRoster() error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(s.roster.Snapshot()); err != nil {
		log.Printf("[ROSTER] save failed: %v", err)
		return opErr("save roster", "", fmt.Errorf("%w: %v", ErrNotPersisted, err))
	}
	return nil
}

func (s *Session) AddStudent(id, name string) (models.Student, error) {
	id = normalizeID(id)
	s.mu.Lock()
	if err := s.roster.Add(id, name); err != nil {
		s.mu.Unlock()
		return models.Student{}, err
	}
	student := models.Student{ID: id, Name: s.roster.Lookup(id)}
	saveErr := s.saveRoster()
	s.mu.Unlock()

	s.publish(models.EventStudentAdded, student)
	return student, saveErr
}

// DeleteStudent removes the student and every attendance entry they have.
// It returns the number of attendance entries purged.
func (s *Session) DeleteStudent(id string) (int, error) {
	id = normalizeID(id)
	s.mu.Lock()
	if err := s.roster.Remove(id); err != nil {
		s.mu.Unlock()
		return 0, err
	}
	purged := s.attendance.RemoveStudent(id)
	saveErr := s.saveRoster()
	s.mu.Unlock()

	s.publish(models.EventStudentDeleted, payload{"student_id": id, "purged_entries": purged})
	return purged, saveErr
}

func (s *Session) ListStudents() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.List()
}

func (s *Session) LookupStudent(id string) string {
	id = normalizeID(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Lookup(id)
}

func (s *Session) MarkAttendance(studentID, date string, status models.Status) (models.UndoEntry, error) {
	studentID = normalizeID(studentID)
	if err := validateWrite("mark attendance", studentID, date, status); err != nil {
		return models.UndoEntry{}, err
	}
	s.mu.Lock()
	entry := s.attendance.Mark(studentID, date, status)
	s.mu.Unlock()

	s.publish(models.EventAttendanceMarked, models.QueueItem{StudentID: studentID, Date: date, Status: status})
	return entry, nil
}

func (s *Session) DeleteAttendanceDate(date string) error {
	s.mu.Lock()
	err := s.attendance.DeleteDate(date)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.publish(models.EventDayDeleted, payload{"date": date})
	return nil
}

// Day joins the date's entries with roster names, sorted by student id.
func (s *Session) Day(date string) models.DayResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.attendance.Day(date)
	entries := make([]models.DayEntry, 0, len(day))
	for id, st := range day {
		entries = append(entries, models.DayEntry{StudentID: id, Name: s.roster.Lookup(id), Status: st})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].StudentID < entries[j].StudentID })
	return models.DayResponse{Date: date, Entries: entries}
}

func (s *Session) StatusOf(studentID, date string) models.Status {
	studentID = normalizeID(studentID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attendance.StatusOf(studentID, date)
}

func (s *Session) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attendance.Dates()
}

// QueueAdd appends a pending write. An empty date means today.
func (s *Session) QueueAdd(studentID, date string, status models.Status) (models.QueueItem, error) {
	studentID = normalizeID(studentID)
	if date == "" {
		date = s.now().Format(models.DateLayout)
	}
	if err := validateWrite("queue attendance", studentID, date, status); err != nil {
		return models.QueueItem{}, err
	}
	item := models.QueueItem{StudentID: studentID, Date: date, Status: status, SubmittedAt: s.now().UTC()}
	s.mu.Lock()
	s.intake.Enqueue(item)
	s.mu.Unlock()

	s.publish(models.EventQueueAdded, item)
	return item, nil
}

// ProcessNextQueued applies the oldest pending item through the same path
// as MarkAttendance, undo entry included.
func (s *Session) ProcessNextQueued() (models.QueueItem, error) {
	s.mu.Lock()
	item, err := s.intake.Next()
	if err != nil {
		s.mu.Unlock()
		return models.QueueItem{}, err
	}
	s.attendance.Mark(item.StudentID, item.Date, item.Status)
	s.mu.Unlock()

	s.publish(models.EventQueueProcessed, item)
	return item, nil
}

func (s *Session) QueuePending() []models.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intake.Pending()
}

func (s *Session) QueueHistory() []models.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intake.History()
}

func (s *Session) Undo() (models.UndoEntry, error) {
	s.mu.Lock()
	entry, err := s.attendance.Undo()
	s.mu.Unlock()
	if err != nil {
		return models.UndoEntry{}, err
	}
	s.publish(models.EventUndo, entry)
	return entry, nil
}

func (s *Session) StudentReport(studentID string) models.StudentReport {
	studentID = normalizeID(studentID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return StudentReport(s.attendance, s.roster, studentID)
}

func (s *Session) DailyPresentCounts() []models.DailyCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DailyPresentCounts(s.attendance)
}

// normalizeID is applied at every entry point so the roster, attendance
// and queue all key students the same way.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

func validateWrite(op, studentID, date string, status models.Status) error {
	if studentID == "" {
		return opErr(op, studentID, fmt.Errorf("%w: student id is required", ErrInvalidInput))
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return opErr(op, date, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput))
	}
	if !status.Valid() {
		return opErr(op, string(status), fmt.Errorf("%w: status must be present or absent", ErrInvalidInput))
	}
	return nil
}

// payload is the shape of small ad hoc event bodies.
type payload map[string]interface{}
