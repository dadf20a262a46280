package routes

import (
	"attendance_backend/feed"
	"attendance_backend/handlers"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, session *store.Session, hub *feed.Hub, db handlers.Pinger) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	studentHandler := handlers.NewStudentHandler(session)
	attendanceHandler := handlers.NewAttendanceHandler(session)
	queueHandler := handlers.NewQueueHandler(session)
	undoHandler := handlers.NewUndoHandler(session)
	reportHandler := handlers.NewReportHandler(session)
	feedHandler := handlers.NewFeedHandler(hub)

	r.GET("/health", healthHandler.HealthCheck)

	// Student routes
	r.GET("/students", studentHandler.GetStudents)
	r.POST("/students", studentHandler.CreateStudent)
	r.DELETE("/students/:id", studentHandler.DeleteStudent)

	// Attendance routes
	r.GET("/attendance", attendanceHandler.GetDates)
	r.POST("/attendance", attendanceHandler.MarkAttendance)
	r.GET("/attendance/:date", attendanceHandler.GetDay)
	r.DELETE("/attendance/:date", attendanceHandler.DeleteDay)

	// Intake queue routes
	r.GET("/queue", queueHandler.GetQueue)
	r.POST("/queue", queueHandler.AddToQueue)
	r.POST("/queue/process", queueHandler.ProcessNext)
	r.GET("/queue/history", queueHandler.GetHistory)

	r.POST("/undo", undoHandler.Undo)

	// Report routes
	r.GET("/reports/students/:id", reportHandler.GetStudentReport)
	r.GET("/reports/daily", reportHandler.GetDailyCounts)

	// Live feed
	r.GET("/ws", feedHandler.Subscribe)
}
