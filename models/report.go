package models

type StudentReportRow struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

type StudentReport struct {
	StudentID string             `json:"student_id"`
	Name      string             `json:"name"`
	Rows      []StudentReportRow `json:"rows"`
}

type DailyCount struct {
	Date         string `json:"date"`
	PresentCount int    `json:"present_count"`
}
