package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mealkeep/backend/config"
	"github.com/mealkeep/backend/internal/api"
	"github.com/mealkeep/backend/internal/middleware"
	"github.com/mealkeep/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	store  *store.Store
}

// New creates a new server instance with all routes registered
func New(cfg *config.Config, s *store.Store) *Server {
	router := gin.Default()
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Readiness: the store is unavailable until the initial load settles.
	router.GET("/health", func(c *gin.Context) {
		if !s.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	api.NewRecipeHandler(s).RegisterRoutes(v1)
	api.NewMealHandler(s).RegisterRoutes(v1)
	api.NewShoppingHandler(s).RegisterRoutes(v1)
	api.NewOnboardingHandler(s).RegisterRoutes(v1)

	return &Server{
		router: router,
		store:  s,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and drains pending store writes.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return s.store.Flush(ctx)
}
