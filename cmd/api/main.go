package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mealkeep/backend/config"
	"github.com/mealkeep/backend/internal/database"
	"github.com/mealkeep/backend/internal/server"
	"github.com/mealkeep/backend/internal/store"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the configured key-value backend
	kv, err := database.NewKV(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	// Build the store and run the initial load
	st := store.New(kv, cfg.SeedSampleRecipes)
	defer st.Close()

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := st.Load(loadCtx); err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}
	log.Printf("Store loaded: %d recipes, %d planned meals", len(st.Recipes()), len(st.PlannedMeals()))

	// Create and start server
	srv := server.New(cfg, st)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server and settle pending writes
	log.Println("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
