package store

import "attendance_backend/models"

// StudentReport lists the student's status on every recorded date,
// defaulting to absent where the student has no entry.
func StudentReport(att *Attendance, roster *Roster, studentID string) models.StudentReport {
	dates := att.Dates()
	rows := make([]models.StudentReportRow, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, models.StudentReportRow{Date: d, Status: att.StatusOf(studentID, d)})
	}
	return models.StudentReport{
		StudentID: studentID,
		Name:      roster.Lookup(studentID),
		Rows:      rows,
	}
}

// DailyPresentCounts returns one row per recorded date, ascending.
func DailyPresentCounts(att *Attendance) []models.DailyCount {
	dates := att.Dates()
	out := make([]models.DailyCount, 0, len(dates))
	for _, d := range dates {
		count := 0
		for _, st := range att.days[d] {
			if st == models.StatusPresent {
				count++
			}
		}
		out = append(out, models.DailyCount{Date: d, PresentCount: count})
	}
	return out
}
