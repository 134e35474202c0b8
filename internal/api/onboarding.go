package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealkeep/backend/internal/store"
)

// OnboardingHandler exposes the persisted first-run flag.
type OnboardingHandler struct {
	store *store.Store
}

// NewOnboardingHandler creates a new onboarding handler over the shared store.
func NewOnboardingHandler(s *store.Store) *OnboardingHandler {
	return &OnboardingHandler{store: s}
}

// RegisterRoutes registers the onboarding routes.
func (h *OnboardingHandler) RegisterRoutes(router *gin.RouterGroup) {
	onboarding := router.Group("/onboarding")
	{
		onboarding.GET("", h.Status)
		onboarding.POST("/complete", h.Complete)
	}
}

func (h *OnboardingHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"completed": h.store.HasCompletedOnboarding(),
	})
}

// Complete marks onboarding done. Repeat calls are idempotent.
func (h *OnboardingHandler) Complete(c *gin.Context) {
	h.store.CompleteOnboarding()
	c.JSON(http.StatusOK, gin.H{
		"completed": true,
	})
}
