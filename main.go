package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"attendance_backend/config"
	"attendance_backend/db"
	"attendance_backend/feed"
	"attendance_backend/handlers"
	"attendance_backend/middleware"
	"attendance_backend/routes"
	"attendance_backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Roster persistence
	var (
		persister store.RosterPersister
		database  *sql.DB
		pinger    handlers.Pinger
	)
	switch cfg.RosterBackend {
	case config.BackendPostgres:
		database, err = db.Initialize(db.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			log.Fatalf("Error connecting to the database: %v", err)
		}
		defer database.Close()

		if err := db.InitSchema(database); err != nil {
			log.Fatalf("Error initializing database schema: %v", err)
		}
		persister = db.NewPostgresRoster(database)
		pinger = database
	default:
		fileRoster, err := db.NewFileRoster(cfg.RosterFile)
		if err != nil {
			log.Fatalf("Error opening roster file: %v", err)
		}
		log.Printf("Using roster file %s", fileRoster.Path())
		persister = fileRoster
	}

	hub := feed.NewHub()
	session := store.NewSession(
		store.WithPersister(persister),
		store.WithNotifier(hub),
	)

	// Initialize router
	r := gin.Default()
	r.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		middleware.RequestIDHeader,
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
		"DELETE",
	}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r, session, hub, pinger)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("Listening on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	hub.Close()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
