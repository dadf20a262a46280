package store

import (
	"errors"
	"testing"

	"attendance_backend/models"
)

func TestAttendance_MarkRecordsPreviousValue(t *testing.T) {
	a := NewAttendance()

	first := a.Mark("s1", "2024-01-01", models.StatusAbsent)
	if first.HasPrevious() {
		t.Fatalf("first write must have no previous value")
	}
	second := a.Mark("s1", "2024-01-01", models.StatusPresent)
	if !second.HasPrevious() || *second.Previous != models.StatusAbsent {
		t.Fatalf("second write previous = %+v", second)
	}
	if a.UndoDepth() != 2 {
		t.Fatalf("UndoDepth = %d, want 2", a.UndoDepth())
	}
}

func TestAttendance_UndoAfterDateDeletedRecreatesDay(t *testing.T) {
	a := NewAttendance()
	a.Mark("s1", "2024-01-01", models.StatusAbsent)
	a.Mark("s1", "2024-01-01", models.StatusPresent)
	if err := a.DeleteDate("2024-01-01"); err != nil {
		t.Fatalf("DeleteDate: %v", err)
	}

	if _, err := a.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !a.Has("s1", "2024-01-01") || a.StatusOf("s1", "2024-01-01") != models.StatusAbsent {
		t.Fatalf("expected absent restored, got %v", a.Day("2024-01-01"))
	}

	// The original first write had no previous value; undoing it removes the
	// entry again and drops the now-empty day.
	if _, err := a.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(a.Dates()) != 0 {
		t.Fatalf("expected no days, got %v", a.Dates())
	}
	if _, err := a.Undo(); !errors.Is(err, ErrEmptyUndo) {
		t.Fatalf("expected ErrEmptyUndo, got %v", err)
	}
}

func TestAttendance_DayReturnsCopy(t *testing.T) {
	a := NewAttendance()
	a.Mark("s1", "2024-01-01", models.StatusPresent)

	day := a.Day("2024-01-01")
	day["s1"] = models.StatusAbsent
	if a.StatusOf("s1", "2024-01-01") != models.StatusPresent {
		t.Fatalf("Day must not expose internal map")
	}
	if got := a.Day("1999-01-01"); len(got) != 0 {
		t.Fatalf("unknown day should be empty, got %v", got)
	}
}

func TestAttendance_RemoveStudentDropsEmptiedDays(t *testing.T) {
	a := NewAttendance()
	a.Mark("s1", "2024-01-01", models.StatusPresent)
	a.Mark("s2", "2024-01-01", models.StatusPresent)
	a.Mark("s1", "2024-01-02", models.StatusPresent)

	if got := a.RemoveStudent("s1"); got != 2 {
		t.Fatalf("RemoveStudent = %d, want 2", got)
	}
	if got := a.Dates(); len(got) != 1 || got[0] != "2024-01-01" {
		t.Fatalf("Dates = %v, want [2024-01-01]", got)
	}
	counts := DailyPresentCounts(a)
	if len(counts) != 1 || counts[0].PresentCount != 1 {
		t.Fatalf("counts = %+v", counts)
	}
}

func TestRoster_LookupAndList(t *testing.T) {
	r := NewRoster()
	if err := r.Add("b", "Bea"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add("a", "Al"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := r.Lookup("a"); got != "Al" {
		t.Fatalf("Lookup = %q", got)
	}
	if got := r.Lookup("zz"); got != models.UnknownStudent {
		t.Fatalf("Lookup unknown = %q", got)
	}
	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("List = %+v", list)
	}

	var opErr *OpError
	err := r.Remove("zz")
	if !errors.As(err, &opErr) || opErr.Key != "zz" || !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove unknown = %v", err)
	}
}
