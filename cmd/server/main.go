package main

import (
	"log"
	"net/http"

	"driver_hire/internal/config"
	"driver_hire/internal/logger"
	"driver_hire/internal/middleware"
	"driver_hire/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Resolve the store configuration; partial DB_* config is fatal
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Connect to the store and make sure the tables exist
	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("storage unavailable: %v", err)
	}
	if err := config.EnsureSchema(db); err != nil {
		log.Fatalf("storage unavailable: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + cfg.ListenPort
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
